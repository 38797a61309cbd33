package orders

import (
	"strings"
	"testing"
	"time"

	"bakehouse/models"

	"github.com/shopspring/decimal"
)

func TestProjectComputesExactTotal(t *testing.T) {
	items := []models.CartLine{
		{Name: "A", Price: models.MoneyFromInt(10), Quantity: 2},
		{Name: "B", Price: models.MoneyFromInt(5), Quantity: 3},
	}

	lines, total := Project(items)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !total.Decimal.Equal(decimal.NewFromInt(35)) {
		t.Errorf("expected total 35, got %s", total.Decimal)
	}
}

func TestProjectFillsDisplayDefaults(t *testing.T) {
	items := []models.CartLine{
		{Name: "Glaze Cake", Price: models.MoneyFromInt(950)},
	}

	lines, total := Project(items)

	line := lines[0]
	if line.Description != "No description" {
		t.Errorf("description default: got %q", line.Description)
	}
	if line.ImageURL != "https://placehold.co/100x100?text=No+Image" {
		t.Errorf("imageUrl default: got %q", line.ImageURL)
	}
	if line.SelectedOption != "N/A" {
		t.Errorf("selectedOption default: got %q", line.SelectedOption)
	}
	if line.Quantity != 1 {
		t.Errorf("zero quantity should default to 1, got %d", line.Quantity)
	}
	if !total.Decimal.Equal(decimal.NewFromInt(950)) {
		t.Errorf("expected total 950, got %s", total.Decimal)
	}
}

func TestProjectChocolateCakeScenario(t *testing.T) {
	// one line at the catalog price 600, quantity 2
	items := []models.CartLine{
		{Name: "Chocolate Cake", SelectedOption: "1kg", Price: models.MoneyFromInt(600), Quantity: 2},
	}

	lines, total := Project(items)

	if !total.Decimal.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected total 1200, got %s", total.Decimal)
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestProjectDecimalPricesDoNotDrift(t *testing.T) {
	price := func(s string) models.Money {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad price %q: %v", s, err)
		}
		return models.NewMoney(d)
	}

	// 0.1 + 0.2 style drift would show up over many small lines
	items := make([]models.CartLine, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, models.CartLine{Name: "Pastry", SelectedOption: string(rune('a' + i)), Price: price("0.10"), Quantity: 3})
	}

	_, total := Project(items)

	want, _ := decimal.NewFromString("3.00")
	if !total.Decimal.Equal(want) {
		t.Errorf("expected exact total 3.00, got %s", total.Decimal)
	}
}

func TestSummarizeAllNewestFirst(t *testing.T) {
	older := models.Order{
		OrderID:     "ORDOLD",
		OrderDate:   time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		TotalAmount: models.MoneyFromInt(600),
	}
	newer := models.Order{
		OrderID:     "ORDNEW",
		OrderDate:   time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
		TotalAmount: models.MoneyFromInt(950),
	}

	// oldest first on purpose; the summaries must still come back
	// newest first
	got := SummarizeAll([]models.Order{older, newer})

	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].OrderID != "ORDNEW" || got[1].OrderID != "ORDOLD" {
		t.Errorf("wrong order: got %s then %s", got[0].OrderID, got[1].OrderID)
	}
}

func TestNewOrderIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := newOrderID()
		if !strings.HasPrefix(id, "ORD") || len(id) != len("ORD")+10 {
			t.Fatalf("unexpected order id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate order id %q", id)
		}
		seen[id] = true
	}
}

func TestSummarizeUsesFixedStatusLabel(t *testing.T) {
	o := models.Order{
		OrderID:     "ORD123",
		TotalAmount: models.MoneyFromInt(1200),
		Items: []models.OrderLine{
			{Name: "Chocolate Cake", Price: models.MoneyFromInt(600), Quantity: 2},
		},
	}

	s := Summarize(o)

	if s.Status != "Delivered" {
		t.Errorf("expected constant status label, got %q", s.Status)
	}
	if s.TotalAmount != 1200 {
		t.Errorf("expected numeric total 1200, got %v", s.TotalAmount)
	}
	if s.Items[0].Price != 600 {
		t.Errorf("expected numeric line price 600, got %v", s.Items[0].Price)
	}
}
