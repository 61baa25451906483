package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderTimeLayout = "02/01/2006 15:04"

// ErrOrderSubmitted is returned when items are added to an order that has
// already been handed to the ledger.
var ErrOrderSubmitted = errors.New("order already submitted")

// Order is a customer's delivery order. Total cost and meal type are derived
// from the items and recalculated on every AddItem.
type Order struct {
	id              string
	customerName    string
	contactNumber   string
	deliveryAddress string
	items           []Food
	totalCost       decimal.Decimal
	mealType        MealType
	createdAt       time.Time
	submitted       bool
}

// NewOrder starts an empty VEGAN order stamped with the current time.
// Timestamps keep microsecond precision, the finest every store can hold.
func NewOrder(customerName, contactNumber, deliveryAddress string) *Order {
	return &Order{
		id:              uuid.NewString(),
		customerName:    customerName,
		contactNumber:   contactNumber,
		deliveryAddress: deliveryAddress,
		totalCost:       decimal.Zero,
		mealType:        MealVegan,
		createdAt:       time.Now().Truncate(time.Microsecond),
	}
}

// RestoreOrder rebuilds a previously stored order, keeping its identity and
// timestamp. The result is already submitted.
func RestoreOrder(id, customerName, contactNumber, deliveryAddress string, createdAt time.Time, items []Food) *Order {
	o := &Order{
		id:              id,
		customerName:    customerName,
		contactNumber:   contactNumber,
		deliveryAddress: deliveryAddress,
		createdAt:       createdAt.Truncate(time.Microsecond),
		submitted:       true,
	}
	for _, item := range items {
		o.items = append(o.items, cloneFood(item))
	}
	o.recalculate()
	return o
}

// AddItem appends a copy of f, so later changes to f do not leak into the
// order's totals. Submitted orders are frozen.
func (o *Order) AddItem(f Food) error {
	if o.submitted {
		return fmt.Errorf("%w: %s", ErrOrderSubmitted, o.id)
	}
	o.items = append(o.items, cloneFood(f))
	o.recalculate()
	return nil
}

// Submit freezes the order. The ledger calls it when the order is queued.
func (o *Order) Submit() { o.submitted = true }

func (o *Order) Submitted() bool { return o.submitted }

func (o *Order) recalculate() {
	total := decimal.Zero
	classes := make([]MealType, 0, len(o.items))
	for _, item := range o.items {
		total = total.Add(item.Price())
		classes = append(classes, item.MealType())
	}
	o.totalCost = total
	o.mealType = classify(classes)
}

func (o *Order) ID() string                 { return o.id }
func (o *Order) CustomerName() string       { return o.customerName }
func (o *Order) ContactNumber() string      { return o.contactNumber }
func (o *Order) DeliveryAddress() string    { return o.deliveryAddress }
func (o *Order) TotalCost() decimal.Decimal { return o.totalCost }
func (o *Order) MealType() MealType         { return o.mealType }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) ItemCount() int             { return len(o.items) }

// Items returns copies of the food items in insertion order.
func (o *Order) Items() []Food {
	items := make([]Food, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, cloneFood(item))
	}
	return items
}

func (o *Order) String() string {
	var b strings.Builder
	b.WriteString("Order Details:\n")
	fmt.Fprintf(&b, "Customer: %s\n", o.customerName)
	fmt.Fprintf(&b, "Contact: %s\n", o.contactNumber)
	fmt.Fprintf(&b, "Address: %s\n", o.deliveryAddress)
	fmt.Fprintf(&b, "Order Time: %s\n", o.createdAt.Format(orderTimeLayout))
	fmt.Fprintf(&b, "Meal Type: %s\n", o.mealType)
	b.WriteString("Food Items:\n")
	for i, item := range o.items {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintf(&b, "Total Cost: %s", FormatPrice(o.totalCost))
	return b.String()
}

// NormalizeCustomer is the history key for a customer name.
func NormalizeCustomer(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
