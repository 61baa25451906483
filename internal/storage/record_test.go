package storage

import (
	"testing"
	"time"

	"takeaway/internal/domain"
	"takeaway/internal/menu"
	"takeaway/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.OrderStore     = (*FileStore)(nil)
	_ service.OrderStore     = (*PostgresStore)(nil)
	_ service.OrderStore     = (*RedisStore)(nil)
	_ service.EventPublisher = (*KafkaPublisher)(nil)
)

func sampleOrder(customer string) *domain.Order {
	order := domain.NewOrder(customer, "0412345678", "12 Harbour Rd")
	order.AddItem(domain.NewPizza(domain.Ham, domain.Cheese))
	order.AddItem(domain.NewPasta())
	return order
}

func assertSameOrder(t *testing.T, want, got *domain.Order) {
	t.Helper()
	assert.Equal(t, want.ID(), got.ID())
	assert.Equal(t, want.CustomerName(), got.CustomerName())
	assert.Equal(t, want.ContactNumber(), got.ContactNumber())
	assert.Equal(t, want.DeliveryAddress(), got.DeliveryAddress())
	assert.True(t, want.CreatedAt().Equal(got.CreatedAt()), "created at %v, want %v", got.CreatedAt(), want.CreatedAt())
	assert.Equal(t, want.TotalCost().StringFixed(2), got.TotalCost().StringFixed(2))
	assert.Equal(t, want.MealType(), got.MealType())

	wantItems, gotItems := want.Items(), got.Items()
	require.Len(t, gotItems, len(wantItems))
	for i := range wantItems {
		assert.Equal(t, wantItems[i].String(), gotItems[i].String())
	}
}

func TestEncodeOrder(t *testing.T) {
	order := domain.NewOrder("Jane", "0412345678", "1 Main St")
	order.AddItem(domain.NewPizza(domain.Ham, domain.Pineapple, domain.Cheese))
	order.AddItem(domain.NewPastaWith(domain.PastaTomato))
	order.AddItem(domain.NewPasta())

	rec := EncodeOrder(order)

	assert.Equal(t, RecordVersion, rec.Version)
	assert.Equal(t, order.ID(), rec.ID)
	assert.Equal(t, "33.50", rec.TotalCost.StringFixed(2))
	assert.Equal(t, domain.MealMeat, rec.MealType)
	assert.Equal(t, []ItemRecord{
		{Category: domain.CategoryPizza, Toppings: []string{"HAM", "PINEAPPLE", "CHEESE"}},
		{Category: domain.CategoryPasta, Toppings: []string{"TOMATO"}},
		{Category: domain.CategoryPasta},
	}, rec.Items)
}

func TestDecodeOrder_RoundTrip(t *testing.T) {
	order := sampleOrder("Alice")

	decoded, err := DecodeOrder(EncodeOrder(order))
	require.NoError(t, err)
	assertSameOrder(t, order, decoded)
}

func TestDecodeOrder_RecomputesDerivedFields(t *testing.T) {
	rec := EncodeOrder(sampleOrder("Alice"))
	rec.MealType = domain.MealVegan
	rec.TotalCost = rec.TotalCost.Neg()

	decoded, err := DecodeOrder(rec)
	require.NoError(t, err)
	assert.Equal(t, "27.00", decoded.TotalCost().StringFixed(2))
	assert.Equal(t, domain.MealMeat, decoded.MealType())
}

func TestDecodeOrder_Errors(t *testing.T) {
	tests := []struct {
		name          string
		record        OrderRecord
		expectedError error
	}{
		{
			name:          "unsupported version",
			record:        OrderRecord{Version: RecordVersion + 1, ID: "a"},
			expectedError: ErrUnsupportedVersion,
		},
		{
			name: "unknown category",
			record: OrderRecord{Version: RecordVersion, ID: "b", Items: []ItemRecord{
				{Category: "salad"},
			}},
			expectedError: ErrUnknownCategory,
		},
		{
			name: "unknown pizza topping",
			record: OrderRecord{Version: RecordVersion, ID: "c", Items: []ItemRecord{
				{Category: domain.CategoryPizza, Toppings: []string{"ANCHOVY"}},
			}},
			expectedError: domain.ErrUnknownTopping,
		},
		{
			name: "unknown pasta topping",
			record: OrderRecord{Version: RecordVersion, ID: "d", Items: []ItemRecord{
				{Category: domain.CategoryPasta, Toppings: []string{"PESTO"}},
			}},
			expectedError: domain.ErrUnknownTopping,
		},
		{
			name: "pasta with two toppings",
			record: OrderRecord{Version: RecordVersion, ID: "e", Items: []ItemRecord{
				{Category: domain.CategoryPasta, Toppings: []string{"MARINARA", "BOLOGNESE"}},
			}},
			expectedError: menu.ErrTooManyToppings,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := DecodeOrder(testCase.record)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestDecodeHistory_KeepsOrderPerCustomer(t *testing.T) {
	first := domain.RestoreOrder("1", "Alice", "0412345678", "1 Main St", time.Now(), []domain.Food{domain.NewPizza()})
	second := domain.RestoreOrder("2", "Alice", "0412345678", "1 Main St", time.Now(), []domain.Food{domain.NewPasta()})

	history, err := decodeHistory(encodeHistory(map[string][]*domain.Order{
		"alice": {first, second},
	}))
	require.NoError(t, err)
	require.Len(t, history["alice"], 2)
	assert.Equal(t, "1", history["alice"][0].ID())
	assert.Equal(t, "2", history["alice"][1].ID())
}
