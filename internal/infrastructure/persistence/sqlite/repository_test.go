package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services/testhelpers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/config"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *sqlite.DB {
	t.Helper()
	cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path}
	db, err := sqlite.Open(context.Background(), cfg, testhelpers.DiscardLogger())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append assigns id and timestamp", func(t *testing.T) {
		repo := sqlite.NewOrderRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		order, err := domain.NewOrder(testhelpers.CustomerNumber, "1")
		require.NoError(t, err)

		require.NoError(t, repo.Append(ctx, order))

		assert.Equal(t, int64(1), order.ID)
		assert.False(t, order.CreatedAt.IsZero())
	})

	t.Run("most recent on empty ledger", func(t *testing.T) {
		repo := sqlite.NewOrderRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))

		_, err := repo.MostRecent(ctx)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("recent is newest first and bounded", func(t *testing.T) {
		repo := sqlite.NewOrderRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		for _, id := range []string{"1", "2", "3"} {
			order, err := domain.NewOrder(testhelpers.CustomerNumber, id)
			require.NoError(t, err)
			require.NoError(t, repo.Append(ctx, order))
		}

		recent, err := repo.Recent(ctx, 2)

		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "3", recent[0].ProductID)
		assert.Equal(t, "2", recent[1].ProductID)
		assert.Equal(t, domain.Address(testhelpers.CustomerNumber), recent[0].CustomerAddress)
	})

	t.Run("survives reopening the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.db")
		cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path}

		first, err := sqlite.Open(ctx, cfg, testhelpers.DiscardLogger())
		require.NoError(t, err)
		order, err := domain.NewOrder(testhelpers.CustomerNumber, "4")
		require.NoError(t, err)
		require.NoError(t, sqlite.NewOrderRepository(first).Append(ctx, order))
		first.Close()

		reopened := openTestDB(t, path)
		latest, err := sqlite.NewOrderRepository(reopened).MostRecent(ctx)

		require.NoError(t, err)
		assert.Equal(t, "4", latest.ProductID)
	})

	t.Run("concurrent appends all land", func(t *testing.T) {
		repo := sqlite.NewOrderRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		const writers = 25

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				order, err := domain.NewOrder(domain.Address(fmt.Sprintf("+2547000000%02d", i)), "2")
				if err != nil {
					errs <- err
					return
				}
				errs <- repo.Append(ctx, order)
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		recent, err := repo.Recent(ctx, writers*2)
		require.NoError(t, err)
		assert.Len(t, recent, writers)
	})
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append and most recent", func(t *testing.T) {
		repo := sqlite.NewPaymentRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		notice, err := domain.NewPaymentNotice(testhelpers.SampleNotice)
		require.NoError(t, err)

		require.NoError(t, repo.Append(ctx, notice))
		latest, err := repo.MostRecent(ctx)

		require.NoError(t, err)
		assert.Equal(t, notice.ID, latest.ID)
		assert.Equal(t, "John Doe", latest.PayerName)
		assert.Equal(t, testhelpers.SampleNotice, latest.RawMessage)
	})

	t.Run("empty payer name round-trips as empty", func(t *testing.T) {
		repo := sqlite.NewPaymentRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		notice := &domain.PaymentNotice{RawMessage: "from bob kamau *334#"}

		require.NoError(t, repo.Append(ctx, notice))
		latest, err := repo.MostRecent(ctx)

		require.NoError(t, err)
		assert.Empty(t, latest.PayerName)
		assert.Equal(t, "Bob Kamau", latest.Payer())
	})

	t.Run("most recent on empty ledger", func(t *testing.T) {
		repo := sqlite.NewPaymentRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))

		_, err := repo.MostRecent(ctx)

		assert.ErrorIs(t, err, domain.ErrPaymentNoticeNotFound)
	})

	t.Run("recent is newest first", func(t *testing.T) {
		repo := sqlite.NewPaymentRepository(openTestDB(t, filepath.Join(t.TempDir(), "orders.db")))
		for i := 0; i < 3; i++ {
			n, err := domain.NewPaymentNotice(fmt.Sprintf("payment %d from john doe *334#", i))
			require.NoError(t, err)
			require.NoError(t, repo.Append(ctx, n))
		}

		recent, err := repo.Recent(ctx, 5)

		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, int64(3), recent[0].ID)
		assert.Equal(t, int64(1), recent[2].ID)
	})
}

func TestEnsureSchema_IsIdempotent(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "orders.db"))

	require.NoError(t, db.EnsureSchema(context.Background()))
	require.NoError(t, db.EnsureSchema(context.Background()))
}
