package avgprice

// Strategy fills in the totals of an ordered line sequence, carrying
// running state forward line by line. Implementations are pure: they
// never mutate the lines, and the returned slice is index-aligned with
// the input.
type Strategy interface {
	CalculateTotals(asset Asset, lines []*Line) ([]LineTotals, error)
}

func StrategyFor(method CalculationMethod) Strategy {
	if method == Fifo {
		return fifoStrategy{}
	}
	return averageCostStrategy{}
}

// recalculate replays lines through the method's strategy and commits
// the resulting totals. On error no line is touched.
func recalculate(asset Asset, method CalculationMethod, lines []*Line) error {
	totals, err := StrategyFor(method).CalculateTotals(asset, lines)
	if err != nil {
		return err
	}
	for i, line := range lines {
		line.Totals = totals[i]
	}
	return nil
}
