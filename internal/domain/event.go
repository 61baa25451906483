package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced    = "order_placed"
	EventOrderDelivered = "order_delivered"
)

type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   string          `json:"order_id"`
	Customer  string          `json:"customer"`
	MealType  MealType        `json:"meal_type"`
	TotalCost decimal.Decimal `json:"total_cost"`
	ItemCount int             `json:"item_count"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewOrderEvent(eventType string, order *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:      eventType,
		OrderID:   order.ID(),
		Customer:  NormalizeCustomer(order.CustomerName()),
		MealType:  order.MealType(),
		TotalCost: order.TotalCost(),
		ItemCount: order.ItemCount(),
		Timestamp: at,
	}
}
