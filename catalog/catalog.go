package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
)

// Catalog is the server-side source of truth for unit prices. It is
// built once at startup and never mutated afterwards; handlers receive
// it explicitly rather than through a package global.
type Catalog struct {
	prices map[string]decimal.Decimal
}

// Price returns the canonical unit price for a product name.
func (c *Catalog) Price(name string) (decimal.Decimal, bool) {
	p, ok := c.prices[name]
	return p, ok
}

// Products returns all product names in sorted order.
func (c *Catalog) Products() []string {
	names := make([]string, 0, len(c.prices))
	for name := range c.prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	return len(c.prices)
}

// Load reads a catalog from a JSON file mapping product name to price.
// Prices may be JSON numbers or strings.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var entries map[string]json.Number
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(entries))
	for name, num := range entries {
		p, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("invalid price for %q: %w", name, err)
		}
		prices[name] = p
	}
	return &Catalog{prices: prices}, nil
}

// Default returns the built-in bakery price list.
func Default() *Catalog {
	table := map[string]int64{
		"Chocolate Cake":                   600,
		"Mocha Coffee Cake":                500,
		"Black Forest Cake":                450,
		"Butterscotch Caramel Crunch Cake": 400,
		"Red Velvet Delight Cake":          650,
		"Classic Vanilla Bean Cake":        600,
		"Spring Blossom Floral Cake":       800,
		"Fresh Flowers Cake":               900,
		"Flower Basket Cake":               850,
		"Sparkle Drip Opulence Cake":       700,
		"Elegant Fondant Cake":             1000,
		"Glaze Cake":                       950,
		"Eggless Vanilla Delight":          700,
		"Midnight Chocolate Surprise":      750,
		"Classic Dry Fruit Cake":           900,
		"Assorted Cupcakes":                550,
		"Chocolate Truffle Pastry":         200,
		"Red Velvet Jar Cake":              300,
		"Decadent Chocolate Cake":          650,
		"Decadent Chocolate Truffle Cake":  750,
		"Crunchy Kitkat Cake":              700,
		"Ferrero Rocher Cake":              700,
		"Cookies & Cream Oreo Cake":        600,
		"Classic New York Cheesecake":      600,
		"Indian Rasmalai Cake":             899,
		"Decadent Fudge Brownie Cake":      600,
		"Ice Cream Cake":                   700,
		"Gulab Jamun Cake":                 799,
		"Kaju Katli Cake":                  650,
		"Motichoor Ladoo Cake":             995,
		"Magical Unicorn Cake":             795,
		"Enchanting Princess Cake":         895,
		"Favorite Cartoon Character Cake":  1200,
		"Custom Order Cake":                600,
		"Custom Fruit Cake":                600,
		"Custom Symbol Cake":               1200,
	}

	prices := make(map[string]decimal.Decimal, len(table))
	for name, p := range table {
		prices[name] = decimal.NewFromInt(p)
	}
	return &Catalog{prices: prices}
}

// FromEnv loads the catalog named by CATALOG_FILE, falling back to the
// built-in price list.
func FromEnv() (*Catalog, error) {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		return Load(path)
	}
	return Default(), nil
}
