package service

import (
	"context"
	"iter"

	"takeaway/internal/domain"
)

type LedgerInterface interface {
	AddOrder(ctx context.Context, order *domain.Order) error
	DeliverOrder(ctx context.Context) (*domain.Order, bool, error)
	Pending() iter.Seq[*domain.Order]
	PendingCount() int
	FindByCustomer(query string) []*domain.Order
	FilterByMealType(mealType domain.MealType) []*domain.Order
	History(customerName string) ([]*domain.Order, bool)
	Customers() []string
}

// OrderStore persists the pending queue and the per-customer history.
// Loading absent state returns empty structures, not an error.
type OrderStore interface {
	LoadQueue(ctx context.Context) ([]*domain.Order, error)
	LoadHistory(ctx context.Context) (map[string][]*domain.Order, error)
	SaveQueue(ctx context.Context, queue []*domain.Order) error
	SaveHistory(ctx context.Context, history map[string][]*domain.Order) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var _ LedgerInterface = (*Ledger)(nil)
