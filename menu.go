package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuItem is one catalog position. Items are created at catalog
// initialization and never mutated.
type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

func (i MenuItem) String() string {
	return fmt.Sprintf("%s (%s) - Rs. %s", i.Name, i.Category, i.Price.StringFixed(2))
}

// Catalog is read-only reference data: price and category lookups for the
// order layer. Item names are unique within a catalog.
type Catalog struct {
	items      []MenuItem
	categories []string
	byCategory map[string][]MenuItem
}

func NewCatalog(items ...MenuItem) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[string][]MenuItem),
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item without name")
		}
		if !item.Price.IsPositive() {
			return nil, fmt.Errorf("menu item %q: %w", item.Name, ErrInvalidAmount)
		}
		if _, ok := seen[item.Name]; ok {
			return nil, fmt.Errorf("duplicate menu item %q", item.Name)
		}
		seen[item.Name] = struct{}{}
		if _, ok := c.byCategory[item.Category]; !ok {
			c.categories = append(c.categories, item.Category)
		}
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
		c.items = append(c.items, item)
	}
	return c, nil
}

// ItemByIndex returns the i-th item in catalog order, 0-based.
func (c *Catalog) ItemByIndex(i int) (MenuItem, error) {
	if i < 0 || i >= len(c.items) {
		return MenuItem{}, ErrNotFound
	}
	return c.items[i], nil
}

// ItemsByCategory groups items by category preserving insertion order
// within each category.
func (c *Catalog) ItemsByCategory() map[string][]MenuItem {
	out := make(map[string][]MenuItem, len(c.byCategory))
	for cat, items := range c.byCategory {
		out[cat] = append([]MenuItem(nil), items...)
	}
	return out
}

// Categories returns category names in first-seen order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

func (c *Catalog) Items() []MenuItem {
	return append([]MenuItem(nil), c.items...)
}

func (c *Catalog) Len() int { return len(c.items) }
