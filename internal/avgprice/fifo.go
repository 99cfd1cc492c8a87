package avgprice

import (
	"fmt"

	basis_errors "basis/internal"

	"github.com/shopspring/decimal"
)

// openLot is a discrete batch of acquired quantity with its own fixed
// unit cost, consumed oldest-first on sale.
type openLot struct {
	quantity decimal.Decimal
	unitCost decimal.Decimal
}

type fifoStrategy struct{}

func (fifoStrategy) CalculateTotals(asset Asset, lines []*Line) ([]LineTotals, error) {
	totals := make([]LineTotals, len(lines))
	var lots []openLot

	for i, line := range lines {
		switch line.Type {
		case LineTypeBuy:
			lots = append(lots, openLot{
				quantity: line.Quantity,
				unitCost: line.Amount.Div(line.Quantity),
			})
		case LineTypeSetup:
			lots = []openLot{{
				quantity: line.Quantity,
				unitCost: line.Amount.Div(line.Quantity),
			}}
		case LineTypeSell:
			var err error
			lots, err = consumeLots(lots, line)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown line type %q", line.Type)
		}

		totalCost := decimal.Zero
		quantity := decimal.Zero
		for _, lot := range lots {
			totalCost = totalCost.Add(lot.quantity.Mul(lot.unitCost))
			quantity = quantity.Add(lot.quantity)
		}
		totals[i] = newLineTotals(asset, totalCost, quantity)
	}

	return totals, nil
}

// consumeLots takes the sold quantity out of the head of the lot queue,
// reducing or removing lots until the sell is fully covered.
func consumeLots(lots []openLot, line *Line) ([]openLot, error) {
	available := decimal.Zero
	for _, lot := range lots {
		available = available.Add(lot.quantity)
	}
	if line.Quantity.GreaterThan(available) {
		return nil, basis_errors.ErrInsufficientQuantity{
			LineID:    line.ID,
			Requested: line.Quantity,
			Available: available,
		}
	}

	remaining := line.Quantity
	for remaining.IsPositive() {
		head := &lots[0]
		sold := remaining
		if head.quantity.LessThan(remaining) {
			sold = head.quantity
		}
		head.quantity = head.quantity.Sub(sold)
		remaining = remaining.Sub(sold)
		if head.quantity.IsZero() {
			lots = lots[1:]
		}
	}
	return lots, nil
}
