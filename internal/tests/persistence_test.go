package tests

import (
	"context"
	"testing"

	"takeaway/internal/domain"
	"takeaway/internal/service"
	"takeaway/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_SurvivesRestartWithFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	ledger, err := service.NewLedger(ctx, storage.NewFileStore(dir), nil)
	require.NoError(t, err)

	first := newOrder("Alice", domain.NewPizza(domain.Ham, domain.Pineapple, domain.Cheese))
	second := newOrder("Bob", domain.NewPastaWith(domain.PastaTomato))
	third := newOrder("alice", domain.NewPasta())
	for _, order := range []*domain.Order{first, second, third} {
		require.NoError(t, ledger.AddOrder(ctx, order))
	}
	delivered, ok, err := ledger.DeliverOrder(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID(), delivered.ID())

	reloaded, err := service.NewLedger(ctx, storage.NewFileStore(dir), nil)
	require.NoError(t, err)

	var pendingIDs []string
	for order := range reloaded.Pending() {
		pendingIDs = append(pendingIDs, order.ID())
	}
	assert.Equal(t, []string{second.ID(), third.ID()}, pendingIDs)

	history, ok := reloaded.History("ALICE")
	require.True(t, ok)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID(), history[0].ID())
	assert.Equal(t, "18.00", history[0].TotalCost().StringFixed(2))
	assert.Equal(t, domain.MealMeat, history[0].MealType())

	found := reloaded.FindByCustomer("alice")
	require.Len(t, found, 1)
	assert.Same(t, history[1], found[0])

	assert.Equal(t, []string{"alice", "bob"}, reloaded.Customers())
}
