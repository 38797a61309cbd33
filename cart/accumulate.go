package cart

import (
	"regexp"
	"strings"

	"bakehouse/models"

	"github.com/shopspring/decimal"
)

// AddRequest is the client payload for POST /api/cart/add. The price
// field is display data only; what gets persisted always comes from
// the catalog.
type AddRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"imageUrl"`
	SelectedOption string          `json:"selectedOption"`
	Price          decimal.Decimal `json:"price"`
}

var imgSrcPattern = regexp.MustCompile(`src=["']([^"']+)["']`)

// SanitizeImageURL recovers a bare URL when a caller passes a whole
// markup snippet instead of an image address. If the snippet has no
// quoted src attribute the result is empty.
func SanitizeImageURL(raw string) string {
	if !strings.Contains(raw, "<img") {
		return raw
	}
	m := imgSrcPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// Accumulate merges one add request into the cart. A line matching on
// (name, selectedOption) gets its quantity bumped by one and keeps its
// stored price and display fields; otherwise a new line is appended
// with quantity 1 at the catalog unit price.
func Accumulate(c *models.Cart, req AddRequest, unitPrice decimal.Decimal) {
	for i := range c.Items {
		if c.Items[i].Name == req.Name && c.Items[i].SelectedOption == req.SelectedOption {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, models.CartLine{
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       SanitizeImageURL(req.ImageURL),
		SelectedOption: req.SelectedOption,
		Price:          models.NewMoney(unitPrice),
		Quantity:       1,
	})
}
