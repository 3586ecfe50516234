package checkout

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func item(name string, price int64, category string) MenuItem {
	return MenuItem{Name: name, Price: decimal.NewFromInt(price), Category: category}
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []MenuItem
		wantErr bool
	}{
		{
			"ok",
			[]MenuItem{item("Coke", 60, "Beverages"), item("Lassi", 80, "Beverages")},
			false,
		},
		{
			"duplicate name",
			[]MenuItem{item("Coke", 60, "Beverages"), item("Coke", 70, "Beverages")},
			true,
		},
		{
			"zero price",
			[]MenuItem{item("Coke", 0, "Beverages")},
			true,
		},
		{
			"missing name",
			[]MenuItem{{Price: decimal.NewFromInt(10)}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_ItemByIndex(t *testing.T) {
	c, err := NewCatalog(item("Coke", 60, "Beverages"), item("Lassi", 80, "Beverages"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.ItemByIndex(1)
	if err != nil || got.Name != "Lassi" {
		t.Errorf("ItemByIndex(1) = %v, %v, want Lassi", got, err)
	}
	if _, err := c.ItemByIndex(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("ItemByIndex(2) error = %v, want ErrNotFound", err)
	}
	if _, err := c.ItemByIndex(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("ItemByIndex(-1) error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_ItemsByCategory(t *testing.T) {
	c, err := NewCatalog(
		item("Chicken Momo", 150, "Appetizers"),
		item("Coke", 60, "Beverages"),
		item("Veg Momo", 120, "Appetizers"),
	)
	if err != nil {
		t.Fatal(err)
	}

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "Appetizers" || cats[1] != "Beverages" {
		t.Errorf("Categories() = %v, want first-seen order", cats)
	}

	byCat := c.ItemsByCategory()
	app := byCat["Appetizers"]
	if len(app) != 2 || app[0].Name != "Chicken Momo" || app[1].Name != "Veg Momo" {
		t.Errorf("Appetizers = %v, want insertion order", app)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}
