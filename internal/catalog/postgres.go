package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Qaizar-Master/retail-system/internal/db"
)

// PostgresGateway is a Gateway backed by PostgreSQL.
type PostgresGateway struct {
	db *db.DB
}

// NewPostgresGateway wires a gateway to an already-open database, creating
// the schema and seeding the catalog when the products table is empty.
func NewPostgresGateway(database *db.DB) (*PostgresGateway, error) {
	if err := database.InitSchema(); err != nil {
		return nil, err
	}
	g := &PostgresGateway{db: database}
	if err := g.seedIfEmpty(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *PostgresGateway) GetProducts(ctx context.Context) ([]Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.description, p.price, COALESCE(p.gender, ''),
			p.category, COALESCE(p.image_url, ''),
			COALESCE((SELECT SUM(i.quantity) FROM inventory i WHERE i.sku = p.sku), 0) AS stock
		FROM products p
		WHERE p.active
		ORDER BY p.sku
	`
	rows, err := g.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		var stock int
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Gender, &p.Category, &p.ImageURL, &stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.InStock = stock > 0
		out = append(out, p)
	}
	return out, rows.Err()
}

func (g *PostgresGateway) CheckInventory(ctx context.Context, sku string) (map[string]int, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT location, quantity FROM inventory WHERE UPPER(sku) = UPPER($1)`, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var location string
		var qty int
		if err := rows.Scan(&location, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		out[location] = qty
	}
	return out, rows.Err()
}

func (g *PostgresGateway) CreateOrder(ctx context.Context, userRef string, items []LineItem, total float64) (string, error) {
	if userRef == "" {
		return "", fmt.Errorf("user reference is required")
	}
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	orderID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_ref, total_amount, status) VALUES ($1, $2, $3, $4)`,
		orderID, userRef, total, OrderStatusPaid); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	for _, it := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, sku, quantity) VALUES ($1, $2, $3)`,
			orderID, it.SKU, it.Quantity); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert order item: %w", err)
		}
		// Best-effort decrement: consume stock location by location.
		remaining := it.Quantity
		rows, err := tx.QueryContext(ctx,
			`SELECT location, quantity FROM inventory WHERE sku = $1 AND quantity > 0 ORDER BY quantity DESC`, it.SKU)
		if err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to read stock: %w", err)
		}
		type slot struct {
			location string
			qty      int
		}
		var slots []slot
		for rows.Next() {
			var s slot
			if err := rows.Scan(&s.location, &s.qty); err != nil {
				rows.Close()
				tx.Rollback()
				return "", fmt.Errorf("failed to scan stock: %w", err)
			}
			slots = append(slots, s)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to read stock: %w", err)
		}
		for _, s := range slots {
			if remaining <= 0 {
				break
			}
			take := remaining
			if s.qty < take {
				take = s.qty
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE inventory SET quantity = quantity - $1 WHERE sku = $2 AND location = $3`,
				take, it.SKU, s.location); err != nil {
				tx.Rollback()
				return "", fmt.Errorf("failed to decrement stock: %w", err)
			}
			remaining -= take
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// seedIfEmpty populates products and inventory from the default seed when
// the catalog is empty. Safe to run on every startup.
func (g *PostgresGateway) seedIfEmpty() error {
	var count int
	if err := g.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	log.Println("[catalog] seeding empty product catalog")
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	for _, p := range SeedProducts() {
		gender := sql.NullString{String: p.Gender, Valid: p.Gender != ""}
		if _, err := tx.Exec(
			`INSERT INTO products (id, sku, name, description, price, category, gender, image_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.SKU, p.Name, p.Description, p.Price, p.Category, gender, p.ImageURL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
		}
	}
	for sku, locs := range SeedInventory() {
		for location, qty := range locs {
			if _, err := tx.Exec(
				`INSERT INTO inventory (sku, location, quantity) VALUES ($1, $2, $3)`,
				sku, location, qty); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to seed inventory for %s: %w", sku, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
