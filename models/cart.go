package models

import "time"

// CartLine is a single line in a user's cart. Line identity within a
// cart is the (name, selectedOption) pair.
type CartLine struct {
	Name           string `json:"name" bson:"name"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	SelectedOption string `json:"selectedOption,omitempty" bson:"selectedOption,omitempty"`
	Price          Money  `json:"price" bson:"price"`
	Quantity       int    `json:"quantity" bson:"quantity"`
}

// Cart holds all current lines for one user. There is exactly one cart
// document per user, created on first add and deleted at checkout.
type Cart struct {
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartLine `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}
