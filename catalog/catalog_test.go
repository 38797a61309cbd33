package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := Default()

	price, ok := c.Price("Chocolate Cake")
	if !ok {
		t.Fatal("Chocolate Cake missing from default catalog")
	}
	if !price.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected 600, got %s", price)
	}

	if _, ok := c.Price("Sourdough Loaf"); ok {
		t.Error("unexpected product in catalog")
	}
}

func TestProductsSorted(t *testing.T) {
	c := Default()
	names := c.Products()

	if len(names) != c.Len() {
		t.Fatalf("expected %d names, got %d", c.Len(), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{"Croissant": 85, "Baguette": "120.50"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	price, ok := c.Price("Baguette")
	if !ok {
		t.Fatal("Baguette missing")
	}
	want, _ := decimal.NewFromString("120.50")
	if !price.Equal(want) {
		t.Errorf("expected 120.50, got %s", price)
	}
}

func TestLoadRejectsBadPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"Croissant": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for non-numeric price")
	}
}
