package cart

import (
	"testing"

	"bakehouse/models"

	"github.com/shopspring/decimal"
)

func TestAccumulateIgnoresClientPrice(t *testing.T) {
	c := &models.Cart{UserID: "u1"}
	req := AddRequest{
		Name:           "Chocolate Cake",
		SelectedOption: "1kg",
		Price:          decimal.NewFromInt(1), // client lies about the price
	}

	Accumulate(c, req, decimal.NewFromInt(600))

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	line := c.Items[0]
	if !line.Price.Decimal.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected catalog price 600, got %s", line.Price.Decimal)
	}
	if line.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", line.Quantity)
	}
}

func TestAccumulateMergesSameNameAndOption(t *testing.T) {
	c := &models.Cart{UserID: "u1"}
	req := AddRequest{Name: "Chocolate Cake", SelectedOption: "1kg"}
	price := decimal.NewFromInt(600)

	Accumulate(c, req, price)
	Accumulate(c, req, price)

	if len(c.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(c.Items))
	}
	if c.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", c.Items[0].Quantity)
	}
	if !c.Items[0].Price.Decimal.Equal(price) {
		t.Errorf("price changed on merge: %s", c.Items[0].Price.Decimal)
	}
}

func TestAccumulateRepeatedAddKeepsStoredDisplayFields(t *testing.T) {
	c := &models.Cart{UserID: "u1"}
	price := decimal.NewFromInt(600)

	Accumulate(c, AddRequest{Name: "Chocolate Cake", SelectedOption: "1kg", Description: "original"}, price)
	Accumulate(c, AddRequest{Name: "Chocolate Cake", SelectedOption: "1kg", Description: "changed"}, price)

	if c.Items[0].Description != "original" {
		t.Errorf("merge overwrote description: %q", c.Items[0].Description)
	}
}

func TestAccumulateDistinctOptionsSplitLines(t *testing.T) {
	c := &models.Cart{UserID: "u1"}
	price := decimal.NewFromInt(550)

	Accumulate(c, AddRequest{Name: "Assorted Cupcakes", SelectedOption: "small"}, price)
	Accumulate(c, AddRequest{Name: "Assorted Cupcakes", SelectedOption: "large"}, price)

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", len(c.Items))
	}
	for _, line := range c.Items {
		if line.Quantity != 1 {
			t.Errorf("option %q: expected quantity 1, got %d", line.SelectedOption, line.Quantity)
		}
	}
}

func TestSanitizeImageURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/cake.jpg", "https://example.com/cake.jpg"},
		{`<img src="https://example.com/cake.jpg" alt="cake">`, "https://example.com/cake.jpg"},
		{`<img src='https://example.com/cake.jpg'>`, "https://example.com/cake.jpg"},
		{`<img alt="no source here">`, ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := SanitizeImageURL(tc.in); got != tc.want {
			t.Errorf("SanitizeImageURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
