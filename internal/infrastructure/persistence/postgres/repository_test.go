package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services/testhelpers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	testDB      *testhelpers.TestDatabase
	orderRepo   *postgres.OrderRepository
	paymentRepo *postgres.PaymentRepository
}

func TestLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container tests in short mode")
	}
	suite.Run(t, new(LedgerTestSuite))
}

func (suite *LedgerTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.orderRepo = postgres.NewOrderRepository(suite.testDB.DB)
	suite.paymentRepo = postgres.NewPaymentRepository(suite.testDB.DB)
}

func (suite *LedgerTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *LedgerTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *LedgerTestSuite) Test_Schema_IsIdempotent() {
	err := suite.testDB.DB.EnsureSchema(context.Background())

	suite.Require().NoError(err)
}

func (suite *LedgerTestSuite) Test_Order_AppendAssignsIDAndTimestamp() {
	ctx := context.Background()
	t := suite.T()

	order, err := domain.NewOrder(testhelpers.CustomerNumber, "1")
	require.NoError(t, err)

	require.NoError(t, suite.orderRepo.Append(ctx, order))

	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	saved, err := suite.orderRepo.MostRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)
	assert.Equal(t, domain.Address(testhelpers.CustomerNumber), saved.CustomerAddress)
	assert.Equal(t, "1", saved.ProductID)
}

func (suite *LedgerTestSuite) Test_Order_MostRecentOnEmptyLedger() {
	_, err := suite.orderRepo.MostRecent(context.Background())

	suite.ErrorIs(err, domain.ErrOrderNotFound)
}

func (suite *LedgerTestSuite) Test_Order_RecentIsNewestFirstAndBounded() {
	ctx := context.Background()
	t := suite.T()

	for _, id := range []string{"1", "2", "3", "4"} {
		order, err := domain.NewOrder(testhelpers.CustomerNumber, id)
		require.NoError(t, err)
		require.NoError(t, suite.orderRepo.Append(ctx, order))
	}

	recent, err := suite.orderRepo.Recent(ctx, 3)
	require.NoError(t, err)

	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].ProductID)
	assert.Equal(t, "3", recent[1].ProductID)
	assert.Equal(t, "2", recent[2].ProductID)
}

func (suite *LedgerTestSuite) Test_Order_ConcurrentAppends() {
	ctx := context.Background()
	t := suite.T()
	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := domain.NewOrder(domain.Address(fmt.Sprintf("+2547000000%02d", i)), "1")
			if err != nil {
				errs <- err
				return
			}
			errs <- suite.orderRepo.Append(ctx, order)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	recent, err := suite.orderRepo.Recent(ctx, writers+5)
	require.NoError(t, err)
	assert.Len(t, recent, writers)
}

func (suite *LedgerTestSuite) Test_Payment_AppendAndMostRecent() {
	ctx := context.Background()
	t := suite.T()

	first, err := domain.NewPaymentNotice("payment from alice on monday *334#")
	require.NoError(t, err)
	require.NoError(t, suite.paymentRepo.Append(ctx, first))

	second, err := domain.NewPaymentNotice(testhelpers.SampleNotice)
	require.NoError(t, err)
	require.NoError(t, suite.paymentRepo.Append(ctx, second))

	latest, err := suite.paymentRepo.MostRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, testhelpers.SampleNotice, latest.RawMessage)
	assert.Equal(t, "John Doe", latest.PayerName)
}

func (suite *LedgerTestSuite) Test_Payment_EmptyPayerNameIsStoredAsNull() {
	ctx := context.Background()
	t := suite.T()

	notice := &domain.PaymentNotice{RawMessage: "from bob kamau *334#"}
	require.NoError(t, suite.paymentRepo.Append(ctx, notice))

	var isNull bool
	err := suite.testDB.DB.Pool.QueryRow(ctx, "SELECT payer_name IS NULL FROM payments WHERE id = $1", notice.ID).Scan(&isNull)
	require.NoError(t, err)
	assert.True(t, isNull)

	latest, err := suite.paymentRepo.MostRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, latest.PayerName)
	assert.Equal(t, "Bob Kamau", latest.Payer())
}

func (suite *LedgerTestSuite) Test_Payment_MostRecentOnEmptyLedger() {
	_, err := suite.paymentRepo.MostRecent(context.Background())

	suite.ErrorIs(err, domain.ErrPaymentNoticeNotFound)
}

func (suite *LedgerTestSuite) Test_Payment_Recent() {
	ctx := context.Background()
	t := suite.T()

	for i := 0; i < 3; i++ {
		n, err := domain.NewPaymentNotice(fmt.Sprintf("payment %d from john doe *334#", i))
		require.NoError(t, err)
		require.NoError(t, suite.paymentRepo.Append(ctx, n))
	}

	recent, err := suite.paymentRepo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Greater(t, recent[0].ID, recent[1].ID)
}
