package totalizer

import (
	"context"
	"fmt"

	basis_errors "basis/internal"
	"basis/internal/avgprice"
	"basis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonthlyTotal struct {
	Month           int             `json:"month"`
	AmountBought    decimal.Decimal `json:"amountBought"`
	AmountSold      decimal.Decimal `json:"amountSold"`
	TotalProfitLoss decimal.Decimal `json:"totalProfitLoss"`
	Volume          decimal.Decimal `json:"volume"`
}

type YearlyTotal struct {
	AmountBought    decimal.Decimal `json:"amountBought"`
	AmountSold      decimal.Decimal `json:"amountSold"`
	TotalProfitLoss decimal.Decimal `json:"totalProfitLoss"`
	Volume          decimal.Decimal `json:"volume"`
}

type YearlyReport struct {
	Year          int            `json:"year"`
	Currency      string         `json:"currency,omitempty"`
	MonthlyTotals []MonthlyTotal `json:"monthlyTotals"`
	YearlyTotals  YearlyTotal    `json:"yearlyTotals"`
}

// Totalizer replays each requested profile's full history through its
// configured strategy and aggregates the requested year into monthly
// and yearly Bought/Sold/ProfitLoss/Volume. It caches nothing between
// calls; every call is a fresh full replay.
type Totalizer struct {
	repo repository.ProfileRepository
}

func New(repo repository.ProfileRepository) *Totalizer {
	return &Totalizer{repo: repo}
}

// GetTotals aggregates the given profiles for one calendar year. All
// profiles must share one currency; cost basis is never mixed across
// profiles, only their independently computed figures are summed.
func (t *Totalizer) GetTotals(ctx context.Context, year int, profileIDs []uuid.UUID) (*YearlyReport, error) {
	report := emptyReport(year)
	if len(profileIDs) == 0 {
		return report, nil
	}

	profiles := make([]*avgprice.Profile, 0, len(profileIDs))
	seen := map[uuid.UUID]struct{}{}
	for _, id := range profileIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		profile, err := t.repo.LoadProfile(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", id, err)
		}
		profiles = append(profiles, profile)
	}

	// refuse mixed currencies before aggregating anything
	report.Currency = profiles[0].Currency
	for _, profile := range profiles {
		if profile.Currency != report.Currency {
			return nil, basis_errors.ErrMixedCurrency{
				ProfileID: profile.ID,
				Want:      report.Currency,
				Got:       profile.Currency,
			}
		}
	}

	for _, profile := range profiles {
		if err := t.accumulate(report, year, profile); err != nil {
			return nil, err
		}
	}

	for i := range report.MonthlyTotals {
		m := &report.MonthlyTotals[i]
		m.Volume = m.AmountBought.Add(m.AmountSold)
	}
	report.YearlyTotals.Volume = report.YearlyTotals.AmountBought.Add(report.YearlyTotals.AmountSold)

	return report, nil
}

// accumulate replays one profile's entire history and buckets its
// in-year lines. Lines from earlier years never contribute amounts, but
// they establish the avg cost a sell in the requested year is measured
// against.
func (t *Totalizer) accumulate(report *YearlyReport, year int, profile *avgprice.Profile) error {
	lines := profile.SortedLines()
	replayed, err := avgprice.StrategyFor(profile.Method).CalculateTotals(profile.Asset, lines)
	if err != nil {
		return fmt.Errorf("failed to replay profile %s: %w", profile.ID, err)
	}

	for i, line := range lines {
		if line.Date.Year() != year {
			continue
		}
		month := &report.MonthlyTotals[int(line.Date.Month())-1]

		switch line.Type {
		case avgprice.LineTypeBuy, avgprice.LineTypeSetup:
			month.AmountBought = month.AmountBought.Add(line.Amount)
			report.YearlyTotals.AmountBought = report.YearlyTotals.AmountBought.Add(line.Amount)
		case avgprice.LineTypeSell:
			avgBefore := decimal.Zero
			if i > 0 {
				avgBefore = replayed[i-1].AvgCostOfAcquisition
			}
			profitLoss := line.Amount.Sub(line.Quantity.Mul(avgBefore))

			month.AmountSold = month.AmountSold.Add(line.Amount)
			month.TotalProfitLoss = month.TotalProfitLoss.Add(profitLoss)
			report.YearlyTotals.AmountSold = report.YearlyTotals.AmountSold.Add(line.Amount)
			report.YearlyTotals.TotalProfitLoss = report.YearlyTotals.TotalProfitLoss.Add(profitLoss)
		}
	}
	return nil
}

func emptyReport(year int) *YearlyReport {
	report := &YearlyReport{
		Year:          year,
		MonthlyTotals: make([]MonthlyTotal, 12),
		YearlyTotals: YearlyTotal{
			AmountBought:    decimal.Zero,
			AmountSold:      decimal.Zero,
			TotalProfitLoss: decimal.Zero,
			Volume:          decimal.Zero,
		},
	}
	for i := range report.MonthlyTotals {
		report.MonthlyTotals[i] = MonthlyTotal{
			Month:           i + 1,
			AmountBought:    decimal.Zero,
			AmountSold:      decimal.Zero,
			TotalProfitLoss: decimal.Zero,
			Volume:          decimal.Zero,
		}
	}
	return report
}
