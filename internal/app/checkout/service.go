package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sipzooppp/orders/internal/adapter/logger"
	"github.com/sipzooppp/orders/internal/domain"
	"github.com/sipzooppp/orders/internal/interfaces"
)

type Service struct {
	store  interfaces.OrderLogStore
	clock  interfaces.Clock
	logger logger.Logger
}

func NewService(store interfaces.OrderLogStore, clock interfaces.Clock, logger logger.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Checkout validates the customer info and cart, persists the order, and
// clears the cart. Either the record is persisted and the cart cleared, or
// neither happens: validation and persistence failures leave the cart (and
// the log) exactly as they were, so a retry is safe.
func (s *Service) Checkout(ctx context.Context, cart *domain.Cart, cmd interfaces.CheckoutCommand) (*domain.OrderRecord, error) {
	// 1. Валидация и создание доменной сущности
	record, err := domain.NewOrderRecord(cmd.CustomerName, cmd.MobileNumber, cart.Lines(), s.clock.Now())
	if err != nil {
		s.logger.Error("validation_failed", "Checkout validation failed", "", nil, err)
		return nil, err
	}

	// 2. Синхронная запись в журнал заказов
	if err := s.store.Append(ctx, *record); err != nil {
		s.logger.Error("persist_failed", "Failed to persist order", "", map[string]interface{}{
			"path": s.store.Path(),
		}, err)
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		return nil, err
	}

	// 3. Сброс корзины только после успешной записи
	cart.Clear()

	s.logger.Debug("order_placed", "Order persisted and cart cleared", "", map[string]interface{}{
		"customer":    record.CustomerName,
		"total_price": record.TotalPrice.StringFixed(2),
		"items":       len(record.Items),
	})

	return record, nil
}
