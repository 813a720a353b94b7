package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGatewayProductsCarryStockFlag(t *testing.T) {
	g := NewMemoryGateway()

	products, err := g.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, len(SeedProducts()))

	bySKU := map[string]Product{}
	for _, p := range products {
		bySKU[p.SKU] = p
	}
	assert.True(t, bySKU["RUN-PRO-001"].InStock)
	assert.False(t, bySKU["TSH-WHT-003"].InStock, "no inventory rows means out of stock")
	assert.False(t, bySKU["SNK-BLK-002"].InStock)
}

func TestMemoryGatewayCheckInventory(t *testing.T) {
	g := NewMemoryGateway()
	ctx := context.Background()

	stock, err := g.CheckInventory(ctx, "RUN-PRO-001")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Store_A": 10, "Warehouse": 5}, stock)

	lower, err := g.CheckInventory(ctx, "run-pro-001")
	require.NoError(t, err)
	assert.Equal(t, stock, lower, "SKU lookup is case-insensitive")

	unknown, err := g.CheckInventory(ctx, "NO-SUCH-SKU")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestMemoryGatewayCheckInventoryReturnsCopy(t *testing.T) {
	g := NewMemoryGateway()
	ctx := context.Background()

	stock, err := g.CheckInventory(ctx, "RUN-PRO-001")
	require.NoError(t, err)
	stock["Store_A"] = 0

	again, err := g.CheckInventory(ctx, "RUN-PRO-001")
	require.NoError(t, err)
	assert.Equal(t, 10, again["Store_A"])
}

func TestMemoryGatewayCreateOrder(t *testing.T) {
	g := NewMemoryGateway()
	ctx := context.Background()

	id, err := g.CreateOrder(ctx, "user-123", []LineItem{{SKU: "RUN-PRO-001", Quantity: 12}}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	orders := g.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID)
	assert.Equal(t, "user-123", orders[0].UserRef)
	assert.Equal(t, OrderStatusPaid, orders[0].Status)

	// 12 units drain the first location and spill into the next.
	stock, err := g.CheckInventory(ctx, "RUN-PRO-001")
	require.NoError(t, err)
	total := 0
	for _, qty := range stock {
		total += qty
	}
	assert.Equal(t, 3, total)
}

func TestMemoryGatewayCreateOrderRequiresUserRef(t *testing.T) {
	g := NewMemoryGateway()

	_, err := g.CreateOrder(context.Background(), "  ", nil, 0)
	require.Error(t, err)
	assert.Empty(t, g.Orders())
}
