package catalog

import "context"

// Product is one sellable catalog entity.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	// Gender is "", "Men", "Women" or "Unisex".
	Gender   string `json:"gender,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	InStock  bool   `json:"inStock"`
}

// LineItem is one ordered SKU with a quantity.
type LineItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// Order is a placed order. Orders are write-once from the core's view.
type Order struct {
	ID      string     `json:"id"`
	UserRef string     `json:"userRef"`
	Items   []LineItem `json:"items"`
	Total   float64    `json:"totalAmount"`
	Status  string     `json:"status"`
}

// OrderStatusPaid is the status assigned to newly created orders.
const OrderStatusPaid = "PAID"

// Gateway is the narrow read/write interface to the product store.
type Gateway interface {
	// GetProducts returns the full active catalog.
	GetProducts(ctx context.Context) ([]Product, error)
	// CheckInventory returns per-location quantities for a SKU. Unknown
	// SKUs yield an empty map, not an error.
	CheckInventory(ctx context.Context, sku string) (map[string]int, error)
	// CreateOrder records an order and returns its generated identifier.
	CreateOrder(ctx context.Context, userRef string, items []LineItem, total float64) (string, error)
}
