package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services/testhelpers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlite.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlite.New(sqlDB, testhelpers.DiscardLogger()), mock
}

func TestOrderRepository_StorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("append surfaces insert error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(testhelpers.CustomerNumber, "1", sqlmock.AnyArg()).
			WillReturnError(errors.New("disk I/O error"))

		order, err := domain.NewOrder(testhelpers.CustomerNumber, "1")
		require.NoError(t, err)
		err = sqlite.NewOrderRepository(db).Append(ctx, order)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append order")
		assert.Zero(t, order.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("append reads last insert id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(testhelpers.CustomerNumber, "2", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(42, 1))

		order, err := domain.NewOrder(testhelpers.CustomerNumber, "2")
		require.NoError(t, err)

		require.NoError(t, sqlite.NewOrderRepository(db).Append(ctx, order))
		assert.Equal(t, int64(42), order.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("recent surfaces query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM orders").
			WillReturnError(errors.New("database is locked"))

		_, err := sqlite.NewOrderRepository(db).Recent(ctx, 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "query recent orders")
	})

	t.Run("most recent rejects corrupt timestamp", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "user_number", "product_id", "timestamp"}).
			AddRow(1, testhelpers.CustomerNumber, "1", "yesterday")
		mock.ExpectQuery("FROM orders").WillReturnRows(rows)

		_, err := sqlite.NewOrderRepository(db).MostRecent(ctx)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("most recent maps no rows to sentinel", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_number", "product_id", "timestamp"}))

		_, err := sqlite.NewOrderRepository(db).MostRecent(ctx)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestPaymentRepository_StorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("append surfaces insert error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO payments").
			WillReturnError(errors.New("disk full"))

		notice, err := domain.NewPaymentNotice(testhelpers.SampleNotice)
		require.NoError(t, err)
		err = sqlite.NewPaymentRepository(db).Append(ctx, notice)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append payment notice")
	})

	t.Run("most recent surfaces query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM payments").WillReturnError(errors.New("database is locked"))

		_, err := sqlite.NewPaymentRepository(db).MostRecent(ctx)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrPaymentNoticeNotFound)
	})
}
