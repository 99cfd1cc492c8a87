package avgprice

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineType string

const (
	LineTypeBuy   LineType = "BUY"
	LineTypeSell  LineType = "SELL"
	LineTypeSetup LineType = "SETUP"
)

func ParseLineType(s string) (LineType, error) {
	switch LineType(s) {
	case LineTypeBuy, LineTypeSell, LineTypeSetup:
		return LineType(s), nil
	}
	return "", fmt.Errorf("unknown line type %q", s)
}

// Line is one ledger event of a profile. Amount is the total fiat value
// transacted (quantity * unit price), not a unit price.
type Line struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Date         time.Time
	DisplayOrder int32
	Type         LineType
	Quantity     decimal.Decimal
	Amount       decimal.Decimal
	Comment      string
	Totals       LineTotals
}

// LineTotals is the position after the line is applied, as of the line's
// position in (date, displayOrder) order. It is only ever produced by a
// strategy replay, never set directly.
type LineTotals struct {
	TotalCost            decimal.Decimal
	Quantity             decimal.Decimal
	AvgCostOfAcquisition decimal.Decimal
}

func newLineTotals(asset Asset, totalCost, quantity decimal.Decimal) LineTotals {
	avg := decimal.Zero
	if !quantity.IsZero() {
		avg = totalCost.Div(quantity).Round(asset.Precision)
	}
	return LineTotals{
		TotalCost:            totalCost,
		Quantity:             quantity,
		AvgCostOfAcquisition: avg,
	}
}

// sortLines orders lines chronologically, with DisplayOrder breaking
// same-date ties.
func sortLines(lines []*Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Date.Equal(lines[j].Date) {
			return lines[i].DisplayOrder < lines[j].DisplayOrder
		}
		return lines[i].Date.Before(lines[j].Date)
	})
}
