package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
	"sort"
	"strings"
	"time"

	"takeaway/internal/domain"
)

var (
	ErrEmptyOrder = errors.New("order must contain at least one food item")
	ErrPersist    = errors.New("failed to persist orders")
	ErrLoad       = errors.New("failed to load saved orders")
)

// Ledger owns the FIFO queue of pending orders and every customer's order
// history. An order moves from pending to delivered exactly once and stays in
// history forever. Not safe for concurrent use.
type Ledger struct {
	queue     []*domain.Order
	history   map[string][]*domain.Order
	store     OrderStore
	publisher EventPublisher
	now       func() time.Time
}

// NewLedger loads saved state from store. A nil store keeps everything in
// memory; a nil publisher disables order events.
func NewLedger(ctx context.Context, store OrderStore, publisher EventPublisher) (*Ledger, error) {
	l := &Ledger{
		history:   make(map[string][]*domain.Order),
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
	if store == nil {
		return l, nil
	}

	queue, err := store.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: queue: %w", ErrLoad, err)
	}
	history, err := store.LoadHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: history: %w", ErrLoad, err)
	}
	l.restore(queue, history)
	return l, nil
}

// restore re-links queued orders to the history entries with the same ID so
// both structures share one *Order, as they do before a restart. Stored keys
// that normalize to the same customer are merged by creation time.
func (l *Ledger) restore(queue []*domain.Order, history map[string][]*domain.Order) {
	byID := make(map[string]*domain.Order)
	merged := make(map[string]bool)
	customers := make([]string, 0, len(history))
	for customer := range history {
		customers = append(customers, customer)
	}
	sort.Strings(customers)
	for _, customer := range customers {
		orders := history[customer]
		key := domain.NormalizeCustomer(customer)
		for _, order := range orders {
			byID[order.ID()] = order
		}
		if _, ok := l.history[key]; ok {
			merged[key] = true
		}
		l.history[key] = append(l.history[key], orders...)
	}
	for key := range merged {
		log.Printf("Warning: merged stored histories for %q", key)
		slices.SortStableFunc(l.history[key], func(a, b *domain.Order) int {
			return a.CreatedAt().Compare(b.CreatedAt())
		})
	}

	l.queue = make([]*domain.Order, 0, len(queue))
	for _, order := range queue {
		if shared, ok := byID[order.ID()]; ok {
			l.queue = append(l.queue, shared)
			continue
		}
		log.Printf("Warning: pending order %s missing from history of %q, re-adding", order.ID(), order.CustomerName())
		key := domain.NormalizeCustomer(order.CustomerName())
		l.history[key] = append(l.history[key], order)
		l.queue = append(l.queue, order)
	}
}

// AddOrder queues the order and appends it to its customer's history. The
// order is submitted first, so later AddItem calls on it fail. An error
// wrapping ErrPersist means the order is queued but was not saved.
func (l *Ledger) AddOrder(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ItemCount() == 0 {
		return ErrEmptyOrder
	}
	order.Submit()

	l.queue = append(l.queue, order)
	key := domain.NormalizeCustomer(order.CustomerName())
	l.history[key] = append(l.history[key], order)

	err := l.persist(ctx)
	l.publish(ctx, domain.EventOrderPlaced, order)
	return err
}

// DeliverOrder removes the oldest pending order. ok is false when nothing is
// waiting.
func (l *Ledger) DeliverOrder(ctx context.Context) (*domain.Order, bool, error) {
	if len(l.queue) == 0 {
		return nil, false, nil
	}

	head := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]

	err := l.persist(ctx)
	l.publish(ctx, domain.EventOrderDelivered, head)
	return head, true, err
}

// Pending yields the queued orders oldest first. Each range over the result
// reads the queue as it is at that moment.
func (l *Ledger) Pending() iter.Seq[*domain.Order] {
	return func(yield func(*domain.Order) bool) {
		for _, order := range l.queue {
			if !yield(order) {
				return
			}
		}
	}
}

func (l *Ledger) PendingCount() int {
	return len(l.queue)
}

// FindByCustomer returns pending orders whose customer name contains query,
// ignoring case.
func (l *Ledger) FindByCustomer(query string) []*domain.Order {
	needle := domain.NormalizeCustomer(query)
	var found []*domain.Order
	for order := range l.Pending() {
		if strings.Contains(domain.NormalizeCustomer(order.CustomerName()), needle) {
			found = append(found, order)
		}
	}
	return found
}

func (l *Ledger) FilterByMealType(mealType domain.MealType) []*domain.Order {
	var found []*domain.Order
	for order := range l.Pending() {
		if order.MealType() == mealType {
			found = append(found, order)
		}
	}
	return found
}

// History returns every order ever placed by the customer, delivered ones
// included, oldest first.
func (l *Ledger) History(customerName string) ([]*domain.Order, bool) {
	orders, ok := l.history[domain.NormalizeCustomer(customerName)]
	if !ok {
		return nil, false
	}
	return slices.Clone(orders), true
}

// Customers lists the normalized names that have history, sorted.
func (l *Ledger) Customers() []string {
	names := make([]string, 0, len(l.history))
	for name := range l.history {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Ledger) persist(ctx context.Context) error {
	if l.store == nil {
		return nil
	}

	var errs []error
	if err := l.store.SaveQueue(ctx, slices.Clone(l.queue)); err != nil {
		log.Printf("Warning: could not save pending orders: %v", err)
		errs = append(errs, err)
	}
	if err := l.store.SaveHistory(ctx, l.historySnapshot()); err != nil {
		log.Printf("Warning: could not save customer history: %v", err)
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPersist, errors.Join(errs...))
	}
	return nil
}

func (l *Ledger) historySnapshot() map[string][]*domain.Order {
	snapshot := make(map[string][]*domain.Order, len(l.history))
	for name, orders := range l.history {
		snapshot[name] = slices.Clone(orders)
	}
	return snapshot
}

func (l *Ledger) publish(ctx context.Context, eventType string, order *domain.Order) {
	if l.publisher == nil {
		return
	}
	event := domain.NewOrderEvent(eventType, order, l.now())
	if err := l.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: could not publish %s for order %s: %v", eventType, order.ID(), err)
	}
}
