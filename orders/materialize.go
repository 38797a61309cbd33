package orders

import (
	"bakehouse/models"

	"github.com/shopspring/decimal"
)

// Defaults substituted for missing display fields when a cart line is
// frozen into an order line.
const (
	defaultDescription = "No description"
	defaultImageURL    = "https://placehold.co/100x100?text=No+Image"
	defaultOption      = "N/A"
)

// Project freezes cart lines into order lines and computes the
// authoritative order total. Every optional display field comes back
// filled, and the total is the exact decimal sum of price×quantity
// over the projected lines, using the prices stored on the cart.
func Project(items []models.CartLine) ([]models.OrderLine, models.Money) {
	lines := make([]models.OrderLine, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		line := models.OrderLine{
			Name:           it.Name,
			Description:    it.Description,
			ImageURL:       it.ImageURL,
			SelectedOption: it.SelectedOption,
			Price:          it.Price,
			Quantity:       it.Quantity,
		}
		if line.Description == "" {
			line.Description = defaultDescription
		}
		if line.ImageURL == "" {
			line.ImageURL = defaultImageURL
		}
		if line.SelectedOption == "" {
			line.SelectedOption = defaultOption
		}
		if line.Quantity <= 0 {
			line.Quantity = 1
		}

		total = total.Add(line.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		lines = append(lines, line)
	}

	return lines, models.NewMoney(total)
}
