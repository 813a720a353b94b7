package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryGateway is an in-memory Gateway seeded with the default catalog.
// Safe for use from concurrent sessions.
type MemoryGateway struct {
	mu        sync.RWMutex
	products  []Product
	inventory map[string]map[string]int
	orders    []Order
}

// NewMemoryGateway returns a gateway holding the seed catalog and inventory.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		products:  SeedProducts(),
		inventory: SeedInventory(),
	}
}

func (g *MemoryGateway) GetProducts(_ context.Context) ([]Product, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Product, len(g.products))
	for i, p := range g.products {
		p.InStock = g.totalStockLocked(p.SKU) > 0
		out[i] = p
	}
	return out, nil
}

func (g *MemoryGateway) CheckInventory(_ context.Context, sku string) (map[string]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	key := strings.TrimSpace(sku)
	locs, ok := g.inventory[key]
	if !ok {
		// Case-insensitive fallback before giving up.
		for k, v := range g.inventory {
			if strings.EqualFold(k, key) {
				locs = v
				ok = true
				break
			}
		}
	}
	out := make(map[string]int, len(locs))
	for loc, qty := range locs {
		out[loc] = qty
	}
	return out, nil
}

func (g *MemoryGateway) CreateOrder(_ context.Context, userRef string, items []LineItem, total float64) (string, error) {
	if strings.TrimSpace(userRef) == "" {
		return "", fmt.Errorf("user reference is required")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	orderID := uuid.NewString()
	g.orders = append(g.orders, Order{
		ID:      orderID,
		UserRef: userRef,
		Items:   append([]LineItem(nil), items...),
		Total:   total,
		Status:  OrderStatusPaid,
	})
	// Best-effort inventory decrement across locations.
	for _, it := range items {
		locs, ok := g.inventory[it.SKU]
		if !ok {
			continue
		}
		remaining := it.Quantity
		for loc, cur := range locs {
			if remaining <= 0 {
				break
			}
			if cur >= remaining {
				locs[loc] = cur - remaining
				remaining = 0
			} else if cur > 0 {
				remaining -= cur
				locs[loc] = 0
			}
		}
	}
	return orderID, nil
}

// Orders returns a copy of all orders placed so far.
func (g *MemoryGateway) Orders() []Order {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]Order(nil), g.orders...)
}

func (g *MemoryGateway) totalStockLocked(sku string) int {
	total := 0
	for _, qty := range g.inventory[sku] {
		total += qty
	}
	return total
}
