package avgprice

import (
	"fmt"

	basis_errors "basis/internal"

	"github.com/shopspring/decimal"
)

// averageCostStrategy implements the Brazilian weighted-average rule.
type averageCostStrategy struct{}

func (averageCostStrategy) CalculateTotals(asset Asset, lines []*Line) ([]LineTotals, error) {
	totals := make([]LineTotals, len(lines))
	runningCost := decimal.Zero
	runningQuantity := decimal.Zero

	for i, line := range lines {
		switch line.Type {
		case LineTypeBuy:
			runningCost = runningCost.Add(line.Amount)
			runningQuantity = runningQuantity.Add(line.Quantity)
		case LineTypeSetup:
			// a setup discards all accumulated state and restarts
			// the position from its own quantity/amount
			runningCost = line.Amount
			runningQuantity = line.Quantity
		case LineTypeSell:
			if line.Quantity.GreaterThan(runningQuantity) {
				return nil, basis_errors.ErrInsufficientQuantity{
					LineID:    line.ID,
					Requested: line.Quantity,
					Available: runningQuantity,
				}
			}
			proportion := line.Quantity.Div(runningQuantity)
			runningCost = runningCost.Sub(runningCost.Mul(proportion))
			runningQuantity = runningQuantity.Sub(line.Quantity)
			if runningQuantity.IsZero() {
				runningCost = decimal.Zero
			}
		default:
			return nil, fmt.Errorf("unknown line type %q", line.Type)
		}
		totals[i] = newLineTotals(asset, runningCost, runningQuantity)
	}

	return totals, nil
}
