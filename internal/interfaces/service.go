package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sipzooppp/orders/internal/domain"
)

// Команды для сервисов

type CheckoutCommand struct {
	CustomerName string
	MobileNumber string
}

// Интерфейсы Сервисов (Business Logic)

type CheckoutService interface {
	Checkout(ctx context.Context, cart *domain.Cart, cmd CheckoutCommand) (*domain.OrderRecord, error)
}

type AnalyticsService interface {
	Summary(ctx context.Context) (*SalesSummary, error)
}

// SalesSummary is the read-only aggregation over the full order log.
type SalesSummary struct {
	TotalOrders    int
	GrossRevenue   decimal.Decimal
	TotalItemsSold int
}
