package entity

import (
	"strings"
	"time"
)

// Product is an independent catalog entry referenced by stock rows and
// order lines.
type Product struct {
	ID        int64
	SKU       string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates an active product with trimmed identity fields.
func NewProduct(sku, name string) *Product {
	now := time.Now().UTC()

	return &Product{
		SKU:       strings.TrimSpace(sku),
		Name:      strings.TrimSpace(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename updates the display name.
func (p *Product) Rename(name string) {
	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the product.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}
