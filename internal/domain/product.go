package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. A zero ID means the product has not been
// stored yet; the catalog assigns one on save.
type Product struct {
	ID             int64
	Name           string
	ImageURL       string
	Description    string
	Price          decimal.Decimal
	Classification string
	Specifications string
}

func (p Product) HasID() bool {
	return p.ID != 0
}
