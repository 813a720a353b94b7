package dialogue

import (
	"context"
	"errors"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
)

// stubGateway is a scriptable catalog.Gateway for handler tests.
type stubGateway struct {
	products  []catalog.Product
	inventory map[string]map[string]int

	readErr   error
	createErr error

	orders []placedOrder
}

type placedOrder struct {
	userRef string
	items   []catalog.LineItem
	total   float64
}

func (g *stubGateway) GetProducts(context.Context) ([]catalog.Product, error) {
	if g.readErr != nil {
		return nil, g.readErr
	}
	return g.products, nil
}

func (g *stubGateway) CheckInventory(_ context.Context, sku string) (map[string]int, error) {
	if g.readErr != nil {
		return nil, g.readErr
	}
	out := map[string]int{}
	for loc, qty := range g.inventory[sku] {
		out[loc] = qty
	}
	return out, nil
}

func (g *stubGateway) CreateOrder(_ context.Context, userRef string, items []catalog.LineItem, total float64) (string, error) {
	if g.createErr != nil {
		return "", g.createErr
	}
	g.orders = append(g.orders, placedOrder{userRef: userRef, items: items, total: total})
	return "order-fixed-id", nil
}

func seededStub() *stubGateway {
	return &stubGateway{
		products:  catalog.SeedProducts(),
		inventory: catalog.SeedInventory(),
	}
}

var errGatewayDown = errors.New("gateway unavailable")

func testVocab() *Vocab {
	return MustDefaultVocab()
}

func findSeed(name string) catalog.Product {
	for _, p := range catalog.SeedProducts() {
		if p.Name == name {
			return p
		}
	}
	panic("unknown seed product: " + name)
}
