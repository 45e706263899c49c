package services

import (
	"github.com/shopspring/decimal"

	"gestor-backend/internal/models"
)

// FallbackItemName labels quote lines whose catalog entry was deleted.
const FallbackItemName = "Item"

// LinePrice is the resolved pricing of a single quote line.
type LinePrice struct {
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	// CatalogFound is false when the referenced catalog entry no longer
	// exists and fallbacks were applied.
	CatalogFound bool
}

// Catalog is the price lookup a quote computation runs against. Keyed by
// entry ID.
type Catalog struct {
	Services map[string]*models.Service
	Products map[string]*models.Product
}

// NewCatalog indexes catalog slices for line resolution.
func NewCatalog(services []*models.Service, products []*models.Product) *Catalog {
	c := &Catalog{
		Services: make(map[string]*models.Service, len(services)),
		Products: make(map[string]*models.Product, len(products)),
	}
	for _, s := range services {
		c.Services[s.ID] = s
	}
	for _, p := range products {
		c.Products[p.ID] = p
	}
	return c
}

// ResolveLine prices one quote line. A per-line override always wins over
// the catalog price, including an explicit zero and including lines whose
// catalog entry has been deleted. Dangling references fall back to a zero
// price, a generic name and the default category so documents still render.
func (c *Catalog) ResolveLine(item models.QuoteItem) LinePrice {
	line := LinePrice{
		Name:     FallbackItemName,
		Category: models.DefaultCategory,
	}

	switch item.Type {
	case models.ItemService:
		if s, ok := c.Services[item.ItemID]; ok {
			line.Name = s.Name
			line.UnitPrice = s.Price
			line.CatalogFound = true
			if s.Category != "" {
				line.Category = s.Category
			}
		}
	case models.ItemProduct:
		if p, ok := c.Products[item.ItemID]; ok {
			line.Name = p.Name
			line.UnitPrice = p.Price
			line.CatalogFound = true
			if p.Category != "" {
				line.Category = p.Category
			}
		}
	}

	if item.PriceOverride != nil {
		line.UnitPrice = *item.PriceOverride
	}

	qty := item.Quantity
	if qty < 0 {
		qty = 0
	}
	line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	return line
}

// QuoteTotal sums the line subtotals, applies the discount and clamps the
// result at zero. A discount larger than the subtotal never produces a
// negative document.
func (c *Catalog) QuoteTotal(items []models.QuoteItem, discount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(c.ResolveLine(item).Subtotal)
	}
	total = total.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
