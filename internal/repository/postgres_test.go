package repository

import (
	"context"
	"testing"
	"time"

	"basis/internal/avgprice"
	db "basis/internal/db/query"

	"github.com/google/go-cmp/cmp"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestPostgresProfileRepository(t *testing.T) {
	t.Run("round trip on test db", func(t *testing.T) {
		ctx := context.Background()

		dbConn, err := db.NewTest()
		require.NoError(t, err)
		if err := dbConn.Ping(); err != nil {
			t.Skipf("test database unreachable: %v", err)
		}

		repo := NewPostgresProfileRepository(dbConn, logrus.New())

		profile, err := avgprice.NewProfile("pg round trip", avgprice.Asset{Name: "BTC", Precision: 8}, "EUR", avgprice.Fifo)
		require.NoError(t, err)
		_, err = profile.AddLine(
			time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), 1,
			avgprice.LineTypeBuy, decimal.NewFromFloat(0.5), decimal.NewFromInt(60000), "first",
		)
		require.NoError(t, err)

		require.NoError(t, repo.SaveProfile(ctx, profile))
		t.Cleanup(func() {
			_ = repo.DeleteProfile(ctx, profile)
		})

		loaded, err := repo.LoadProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.Equal(t, profile.Name, loaded.Name)
		require.Equal(t, profile.Method, loaded.Method)
		require.Len(t, loaded.Lines, 1)
		require.Equal(t, "", cmp.Diff(profile.Lines[0].Totals, loaded.Lines[0].Totals))
	})
}
