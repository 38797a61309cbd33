package models

import "time"

// OrderLine is a frozen copy of a cart line. Every display field is
// filled in at materialization time; none are ever null.
type OrderLine struct {
	Name           string `json:"name" bson:"name"`
	Description    string `json:"description" bson:"description"`
	ImageURL       string `json:"imageUrl" bson:"imageUrl"`
	SelectedOption string `json:"selectedOption" bson:"selectedOption"`
	Price          Money  `json:"price" bson:"price"`
	Quantity       int    `json:"quantity" bson:"quantity"`
}

type Address struct {
	FullName     string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Pincode      string `json:"pincode,omitempty" bson:"pincode,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty" bson:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	Landmark     string `json:"landmark,omitempty" bson:"landmark,omitempty"`
	City         string `json:"city,omitempty" bson:"city,omitempty"`
	State        string `json:"state,omitempty" bson:"state,omitempty"`
}

type PaymentDetails struct {
	CardNumberMasked string `json:"cardNumberMasked,omitempty" bson:"cardNumberMasked,omitempty"`
	UpiID            string `json:"upiId,omitempty" bson:"upiId,omitempty"`
	BankName         string `json:"bankName,omitempty" bson:"bankName,omitempty"`
}

// Order is an immutable record created exactly once per checkout.
type Order struct {
	OrderID        string         `json:"orderId" bson:"orderid"`
	UserID         string         `json:"userId" bson:"userId"`
	Items          []OrderLine    `json:"items" bson:"items"`
	Address        Address        `json:"address" bson:"address"`
	PaymentMethod  string         `json:"paymentMethod" bson:"paymentMethod"`
	PaymentDetails PaymentDetails `json:"paymentDetails" bson:"paymentDetails"`
	TotalAmount    Money          `json:"totalAmount" bson:"totalAmount"`
	Status         string         `json:"status" bson:"status"`
	OrderDate      time.Time      `json:"orderDate" bson:"orderDate"`
}

// OrderSummary is the order-history view; money comes back as plain
// numbers for the frontend.
type OrderSummary struct {
	OrderID     string        `json:"orderId"`
	OrderDate   time.Time     `json:"orderDate"`
	TotalAmount float64       `json:"totalAmount"`
	Status      string        `json:"status"`
	Items       []SummaryLine `json:"items"`
}

type SummaryLine struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl"`
	Description    string  `json:"description"`
	SelectedOption string  `json:"selectedOption"`
}
