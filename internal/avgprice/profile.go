package avgprice

import (
	"fmt"
	"strings"
	"time"

	basis_errors "basis/internal"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is the aggregate root of one tracked position: identity,
// display metadata, currency, the selected calculation method and the
// owned, ordered set of lines. Lines are created and destroyed only
// through AddLine/RemoveLine; every mutation replays the full history
// so each line's Totals reflect the state after that line is applied.
type Profile struct {
	ID       uuid.UUID
	Name     string
	Asset    Asset
	Visible  bool
	Icon     string
	Currency string
	Method   CalculationMethod
	Lines    []*Line
	Version  int32
}

func NewProfile(name string, asset Asset, currency string, method CalculationMethod) (*Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("profile must have a name")
	}
	if strings.TrimSpace(asset.Name) == "" {
		return nil, fmt.Errorf("profile must track a named asset")
	}
	if asset.Precision < 0 {
		return nil, fmt.Errorf("asset precision must not be negative, received %d", asset.Precision)
	}
	if money.GetCurrency(currency) == nil {
		return nil, fmt.Errorf("unknown currency code %q", currency)
	}

	return &Profile{
		ID:       uuid.New(),
		Name:     name,
		Asset:    asset,
		Visible:  true,
		Currency: currency,
		Method:   method,
	}, nil
}

// AddLine validates and inserts a new line, re-sorts the full line set
// by (date, displayOrder) and replays the configured strategy over it.
// Pre-existing lines' Totals may change when the new line lands earlier
// than the end of history. Amount is stored as quantity * unitPrice.
func (p *Profile) AddLine(date time.Time, displayOrder int32, lineType LineType, quantity, unitPrice decimal.Decimal, comment string) (uuid.UUID, error) {
	if _, err := ParseLineType(string(lineType)); err != nil {
		return uuid.Nil, basis_errors.ErrInvalidLine{Field: "type", Message: err.Error()}
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return uuid.Nil, basis_errors.ErrInvalidLine{
			Field:   "quantity",
			Message: fmt.Sprintf("must be higher than 0, received %s", quantity),
		}
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return uuid.Nil, basis_errors.ErrInvalidLine{
			Field:   "unitPrice",
			Message: fmt.Sprintf("must be higher than 0, received %s", unitPrice),
		}
	}

	line := &Line{
		ID:           uuid.New(),
		ProfileID:    p.ID,
		Date:         date,
		DisplayOrder: displayOrder,
		Type:         lineType,
		Quantity:     quantity,
		Amount:       quantity.Mul(unitPrice),
		Comment:      comment,
	}

	next := make([]*Line, 0, len(p.Lines)+1)
	next = append(next, p.Lines...)
	next = append(next, line)
	sortLines(next)

	if err := recalculate(p.Asset, p.Method, next); err != nil {
		return uuid.Nil, err
	}
	p.Lines = next
	return line.ID, nil
}

// RemoveLine removes a line by identity and replays the strategy over
// the remaining sequence.
func (p *Profile) RemoveLine(lineID uuid.UUID) error {
	index := -1
	for i, line := range p.Lines {
		if line.ID == lineID {
			index = i
			break
		}
	}
	if index < 0 {
		return basis_errors.ErrLineNotFound{ProfileID: p.ID, LineID: lineID}
	}

	next := make([]*Line, 0, len(p.Lines)-1)
	next = append(next, p.Lines[:index]...)
	next = append(next, p.Lines[index+1:]...)

	if err := recalculate(p.Asset, p.Method, next); err != nil {
		return err
	}
	p.Lines = next
	return nil
}

// Recalculate re-sorts and replays the profile's full history. Used
// after hydrating a profile from storage, and as the correctness oracle
// for persisted totals.
func (p *Profile) Recalculate() error {
	sortLines(p.Lines)
	return recalculate(p.Asset, p.Method, p.Lines)
}

// SortedLines returns the lines in (date, displayOrder) order without
// mutating the profile's own ordering.
func (p *Profile) SortedLines() []*Line {
	out := make([]*Line, len(p.Lines))
	copy(out, p.Lines)
	sortLines(out)
	return out
}

// DeepCopy returns a profile that shares no state with the receiver.
func (p *Profile) DeepCopy() *Profile {
	next := *p
	next.Lines = make([]*Line, len(p.Lines))
	for i, line := range p.Lines {
		copied := *line
		next.Lines[i] = &copied
	}
	return &next
}
