package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/domain"
)

type fakeStore struct {
	records []domain.OrderRecord
}

func (s *fakeStore) Load(_ context.Context) ([]domain.OrderRecord, error) { return s.records, nil }
func (s *fakeStore) Append(_ context.Context, record domain.OrderRecord) error {
	s.records = append(s.records, record)
	return nil
}
func (s *fakeStore) All() []domain.OrderRecord { return s.records }
func (s *fakeStore) Export() ([]byte, error)   { return nil, nil }
func (s *fakeStore) Path() string              { return "fake.csv" }

func record(t *testing.T, product string, qty int) domain.OrderRecord {
	t.Helper()
	cart := domain.NewCart(domain.DefaultCatalog())
	require.NoError(t, cart.SetQuantity(product, qty))
	rec, err := domain.NewOrderRecord("Ann", "0123456789", cart.Lines(), time.Now())
	require.NoError(t, err)
	return *rec
}

func TestSummaryEmptyLog(t *testing.T) {
	svc := NewService(&fakeStore{}, logger.New("test", "error"))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, "0.00", summary.GrossRevenue.StringFixed(2))
	assert.Equal(t, 0, summary.TotalItemsSold)
}

func TestSummaryAggregatesOrders(t *testing.T) {
	store := &fakeStore{records: []domain.OrderRecord{
		record(t, "Classic Lemonade", 2), // 8.00
		record(t, "Strawberry Mint", 1),  // 5.50
	}}
	svc := NewService(store, logger.New("test", "error"))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, "13.50", summary.GrossRevenue.StringFixed(2))
	assert.Equal(t, 3, summary.TotalItemsSold)
}

func TestSummaryFailsOnMalformedItems(t *testing.T) {
	// Simulates a record persisted before the quantity field existed.
	store := &fakeStore{records: []domain.OrderRecord{
		{
			CreatedAt:    time.Now(),
			CustomerName: "Ann",
			MobileNumber: "0123456789",
			Items: []domain.OrderLine{
				{Product: "Classic Lemonade", UnitPrice: decimal.RequireFromString("4.00")},
			},
			TotalPrice: decimal.RequireFromString("4.00"),
		},
	}}
	svc := NewService(store, logger.New("test", "error"))

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedItems)
}
