package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/domain"
	"github.com/sipzooppp/orders/internal/interfaces"
)

type Service struct {
	store  interfaces.OrderLogStore
	logger logger.Logger
}

func NewService(store interfaces.OrderLogStore, logger logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Summary aggregates the full order log. An item entry without a positive
// quantity (persisted data from an older schema) makes the whole summary
// fail with domain.ErrMalformedItems instead of reporting a partial count.
func (s *Service) Summary(ctx context.Context) (*interfaces.SalesSummary, error) {
	records := s.store.All()

	summary := &interfaces.SalesSummary{
		GrossRevenue: decimal.Zero,
	}

	for i, record := range records {
		summary.TotalOrders++
		summary.GrossRevenue = summary.GrossRevenue.Add(record.TotalPrice)

		for _, item := range record.Items {
			if item.Quantity <= 0 {
				s.logger.Warn("malformed_items", "Order has an item without a quantity", "", map[string]interface{}{
					"record":  i,
					"product": item.Product,
				})
				return nil, fmt.Errorf("%w: record %d", domain.ErrMalformedItems, i)
			}
			summary.TotalItemsSold += item.Quantity
		}
	}

	return summary, nil
}
