package avgprice

import (
	"errors"
	"testing"
	"time"

	basis_errors "basis/internal"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T, method CalculationMethod) *Profile {
	t.Helper()
	profile, err := NewProfile("hodl", Asset{Name: "BTC", Precision: 2}, "EUR", method)
	require.NoError(t, err)
	return profile
}

func TestNewProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		profile, err := NewProfile("hodl", Asset{Name: "BTC", Precision: 8}, "EUR", Fifo)
		require.NoError(t, err)
		require.NotEqual(t, profile.ID.String(), "00000000-0000-0000-0000-000000000000")
		require.True(t, profile.Visible)
		require.Empty(t, profile.Lines)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := NewProfile("hodl", Asset{Name: "BTC", Precision: 8}, "???", Fifo)
		require.Error(t, err)
	})

	t.Run("rejects negative precision", func(t *testing.T) {
		_, err := NewProfile("hodl", Asset{Name: "BTC", Precision: -1}, "EUR", Fifo)
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProfile("  ", Asset{Name: "BTC", Precision: 8}, "EUR", Fifo)
		require.Error(t, err)
	})
}

func TestProfile_AddLine(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("amount is quantity times unit price", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		_, err := profile.AddLine(day(1), 1, LineTypeBuy, dec(0.5), dec(60000), "")
		require.NoError(t, err)
		require.Len(t, profile.Lines, 1)
		require.Equal(t, "", cmp.Diff(dec(30000), profile.Lines[0].Amount))
		require.Equal(t, "", cmp.Diff(totals(30000, 0.5, 60000), profile.Lines[0].Totals))
	})

	t.Run("rejects non-positive quantity and unit price", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		var invalidErr basis_errors.ErrInvalidLine

		_, err := profile.AddLine(day(1), 1, LineTypeBuy, dec(0), dec(100), "")
		require.True(t, errors.As(err, &invalidErr), err)

		_, err = profile.AddLine(day(1), 1, LineTypeBuy, dec(1), dec(-5), "")
		require.True(t, errors.As(err, &invalidErr), err)
		require.Empty(t, profile.Lines)
	})

	t.Run("retroactive insert recomputes later totals", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		_, err := profile.AddLine(day(10), 1, LineTypeBuy, dec(1), dec(50000), "")
		require.NoError(t, err)

		// earlier than the existing line, so the existing line's totals
		// must now include it
		_, err = profile.AddLine(day(5), 1, LineTypeBuy, dec(1), dec(30000), "")
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(totals(30000, 1, 30000), profile.Lines[0].Totals))
		require.Equal(t, "", cmp.Diff(totals(80000, 2, 40000), profile.Lines[1].Totals))
	})

	t.Run("displayOrder breaks same-date ties regardless of insertion order", func(t *testing.T) {
		run := func(orders []int32) []LineTotals {
			profile := newTestProfile(t, Fifo)
			prices := map[int32]float64{1: 100, 2: 300}
			for _, order := range orders {
				_, err := profile.AddLine(day(1), order, LineTypeBuy, dec(1), dec(prices[order]), "")
				require.NoError(t, err)
			}
			out := make([]LineTotals, len(profile.Lines))
			for i, line := range profile.Lines {
				out[i] = line.Totals
			}
			return out
		}

		require.Equal(t, "", cmp.Diff(run([]int32{1, 2}), run([]int32{2, 1})))
	})

	t.Run("failed replay leaves existing totals untouched", func(t *testing.T) {
		profile := newTestProfile(t, Fifo)
		_, err := profile.AddLine(day(2), 1, LineTypeBuy, dec(1), dec(100), "")
		require.NoError(t, err)
		before := profile.Lines[0].Totals

		// a sell dated before the only buy cannot be covered
		_, err = profile.AddLine(day(1), 1, LineTypeSell, dec(1), dec(150), "")
		var insufficientErr basis_errors.ErrInsufficientQuantity
		require.True(t, errors.As(err, &insufficientErr), err)

		require.Len(t, profile.Lines, 1)
		require.Equal(t, "", cmp.Diff(before, profile.Lines[0].Totals))
	})

	t.Run("rejects unknown line type", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		_, err := profile.AddLine(day(1), 1, LineType("AIRDROP"), dec(1), dec(100), "")
		var invalidErr basis_errors.ErrInvalidLine
		require.True(t, errors.As(err, &invalidErr), err)
	})
}

func TestProfile_RemoveLine(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("remaining lines are replayed", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		firstID, err := profile.AddLine(day(1), 1, LineTypeBuy, dec(1), dec(20000), "")
		require.NoError(t, err)
		_, err = profile.AddLine(day(2), 1, LineTypeBuy, dec(1), dec(80000), "")
		require.NoError(t, err)

		require.NoError(t, profile.RemoveLine(firstID))
		require.Len(t, profile.Lines, 1)
		require.Equal(t, "", cmp.Diff(totals(80000, 1, 80000), profile.Lines[0].Totals))
	})

	t.Run("unknown line id fails", func(t *testing.T) {
		profile := newTestProfile(t, BrazilianRule)
		lineID, err := profile.AddLine(day(1), 1, LineTypeBuy, dec(1), dec(100), "")
		require.NoError(t, err)
		require.NoError(t, profile.RemoveLine(lineID))

		err = profile.RemoveLine(lineID)
		var notFoundErr basis_errors.ErrLineNotFound
		require.True(t, errors.As(err, &notFoundErr), err)
	})

	t.Run("removing a buy that funds a later sell fails and keeps the line", func(t *testing.T) {
		profile := newTestProfile(t, Fifo)
		buyID, err := profile.AddLine(day(1), 1, LineTypeBuy, dec(2), dec(100), "")
		require.NoError(t, err)
		_, err = profile.AddLine(day(2), 1, LineTypeSell, dec(1), dec(150), "")
		require.NoError(t, err)

		err = profile.RemoveLine(buyID)
		var insufficientErr basis_errors.ErrInsufficientQuantity
		require.True(t, errors.As(err, &insufficientErr), err)
		require.Len(t, profile.Lines, 2)
	})
}

func TestProfile_DeepCopy(t *testing.T) {
	profile := newTestProfile(t, Fifo)
	_, err := profile.AddLine(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), 1, LineTypeBuy, dec(1), dec(100), "first")
	require.NoError(t, err)

	copied := profile.DeepCopy()
	copied.Lines[0].Comment = "changed"
	copied.Name = "other"

	require.Equal(t, "first", profile.Lines[0].Comment)
	require.Equal(t, "hodl", profile.Name)
}
