package models

import "github.com/google/uuid"

// Product is an immutable name/price pair used as an order line item.
//
// Identity is assigned at construction and travels with every copy, so
// a Product works as a map key with reference semantics: two calls to
// NewProduct with the same name and price yield distinct keys, while
// copies of a single Product collapse to one.
type Product struct {
	id    uuid.UUID
	name  string
	price float64
}

// NewProduct returns a Product with a fresh identity. The price is
// taken as given; nothing rejects zero or negative values.
func NewProduct(name string, price float64) Product {
	return Product{id: uuid.New(), name: name, price: price}
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }

func (p Product) String() string { return p.name }
