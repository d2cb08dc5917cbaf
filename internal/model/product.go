package model

import "github.com/shopspring/decimal"

// Product is a storefront listing.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Seller      string
	Price       decimal.Decimal
	Stock       int
}
