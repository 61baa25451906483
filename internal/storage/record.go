package storage

import (
	"errors"
	"fmt"
	"time"

	"takeaway/internal/domain"
	"takeaway/internal/menu"

	"github.com/shopspring/decimal"
)

// RecordVersion is written into every stored order. Bump it when the record
// layout changes.
const RecordVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported record version")
	ErrUnknownCategory    = errors.New("unknown food category in record")
)

type ItemRecord struct {
	Category domain.Category `json:"category"`
	Toppings []string        `json:"toppings,omitempty"`
}

// OrderRecord is the storage form of an order. TotalCost and MealType are
// written for readers of the raw data; decoding recomputes them from Items.
type OrderRecord struct {
	Version         int             `json:"version"`
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	ContactNumber   string          `json:"contact_number"`
	DeliveryAddress string          `json:"delivery_address"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []ItemRecord    `json:"items"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	MealType        domain.MealType `json:"meal_type"`
}

func EncodeOrder(order *domain.Order) OrderRecord {
	items := order.Items()
	rec := OrderRecord{
		Version:         RecordVersion,
		ID:              order.ID(),
		CustomerName:    order.CustomerName(),
		ContactNumber:   order.ContactNumber(),
		DeliveryAddress: order.DeliveryAddress(),
		CreatedAt:       order.CreatedAt(),
		Items:           make([]ItemRecord, 0, len(items)),
		TotalCost:       order.TotalCost(),
		MealType:        order.MealType(),
	}
	for _, item := range items {
		rec.Items = append(rec.Items, encodeItem(item))
	}
	return rec
}

func encodeItem(item domain.Food) ItemRecord {
	switch food := item.(type) {
	case *domain.Pizza:
		toppings := food.Toppings()
		names := make([]string, 0, len(toppings))
		for _, t := range toppings {
			names = append(names, string(t))
		}
		return ItemRecord{Category: domain.CategoryPizza, Toppings: names}
	case *domain.Pasta:
		if t, ok := food.Topping(); ok {
			return ItemRecord{Category: domain.CategoryPasta, Toppings: []string{string(t)}}
		}
		return ItemRecord{Category: domain.CategoryPasta}
	default:
		return ItemRecord{Category: item.Category()}
	}
}

func DecodeOrder(rec OrderRecord) (*domain.Order, error) {
	if rec.Version != RecordVersion {
		return nil, fmt.Errorf("%w: order %s has version %d", ErrUnsupportedVersion, rec.ID, rec.Version)
	}
	items := make([]domain.Food, 0, len(rec.Items))
	for i, itemRec := range rec.Items {
		item, err := decodeItem(itemRec)
		if err != nil {
			return nil, fmt.Errorf("order %s item %d: %w", rec.ID, i, err)
		}
		items = append(items, item)
	}
	return domain.RestoreOrder(rec.ID, rec.CustomerName, rec.ContactNumber, rec.DeliveryAddress, rec.CreatedAt, items), nil
}

func decodeItem(rec ItemRecord) (domain.Food, error) {
	switch rec.Category {
	case domain.CategoryPizza:
		toppings := make([]domain.PizzaTopping, 0, len(rec.Toppings))
		for _, name := range rec.Toppings {
			t, err := domain.ParsePizzaTopping(name)
			if err != nil {
				return nil, err
			}
			toppings = append(toppings, t)
		}
		return domain.NewPizza(toppings...), nil
	case domain.CategoryPasta:
		if len(rec.Toppings) == 0 {
			return domain.NewPasta(), nil
		}
		if len(rec.Toppings) > 1 {
			return nil, fmt.Errorf("%w: got %d", menu.ErrTooManyToppings, len(rec.Toppings))
		}
		t, err := domain.ParsePastaTopping(rec.Toppings[0])
		if err != nil {
			return nil, err
		}
		return domain.NewPastaWith(t), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, rec.Category)
	}
}

func encodeOrders(orders []*domain.Order) []OrderRecord {
	records := make([]OrderRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, EncodeOrder(order))
	}
	return records
}

func decodeOrders(records []OrderRecord) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(records))
	for _, rec := range records {
		order, err := DecodeOrder(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func encodeHistory(history map[string][]*domain.Order) map[string][]OrderRecord {
	records := make(map[string][]OrderRecord, len(history))
	for customer, orders := range history {
		records[customer] = encodeOrders(orders)
	}
	return records
}

func decodeHistory(records map[string][]OrderRecord) (map[string][]*domain.Order, error) {
	history := make(map[string][]*domain.Order, len(records))
	for customer, recs := range records {
		orders, err := decodeOrders(recs)
		if err != nil {
			return nil, fmt.Errorf("history of %q: %w", customer, err)
		}
		history[customer] = orders
	}
	return history, nil
}
