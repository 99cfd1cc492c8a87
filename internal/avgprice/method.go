package avgprice

import "fmt"

// CalculationMethod selects how a sell reduces the tracked position.
type CalculationMethod int

const (
	// BrazilianRule is the weighted-average method: a sell shrinks total
	// cost proportionally to quantity sold, leaving the average cost per
	// unit unchanged.
	BrazilianRule CalculationMethod = iota
	// Fifo consumes discrete purchase lots oldest-first, so the average
	// cost of the remaining position generally changes on a sell.
	Fifo
)

func (m CalculationMethod) String() string {
	switch m {
	case BrazilianRule:
		return "average"
	case Fifo:
		return "fifo"
	default:
		return "unknown"
	}
}

func ParseCalculationMethod(s string) (CalculationMethod, error) {
	switch s {
	case "average":
		return BrazilianRule, nil
	case "fifo":
		return Fifo, nil
	default:
		return 0, fmt.Errorf("unknown calculation method: %q", s)
	}
}

func (m CalculationMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CalculationMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseCalculationMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
