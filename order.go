package models

import "errors"

// Order construction fails on unrecognized enum values with these
// errors. The message text is part of the package contract.
var (
	ErrInvalidTransactionType = errors.New(`Invalid transaction type. It should be "Buy" or "Sell".`)
	ErrInvalidOrderType       = errors.New(`Invalid order type. It should be "Add" or "Remove".`)
)

// Order is a request to buy or sell a set of products. It holds each
// product with its ordered quantity, plus the transaction and order
// types supplied at construction. Orders are immutable once built,
// though the products map is shared with the caller rather than copied.
type Order struct {
	products        map[Product]int
	transactionType TransactionType
	orderType       OrderType
}

// NewOrder builds an Order over the given product quantities.
//
// The transaction type is checked first: values outside Buy/Sell return
// ErrInvalidTransactionType, and only then is the order type checked
// against Add/Remove (ErrInvalidOrderType). Quantities are not
// validated; zero, negative and empty product maps are all accepted.
func NewOrder(products map[Product]int, transactionType TransactionType, orderType OrderType) (Order, error) {
	if !transactionType.Valid() {
		return Order{}, ErrInvalidTransactionType
	}
	if !orderType.Valid() {
		return Order{}, ErrInvalidOrderType
	}
	return Order{
		products:        products,
		transactionType: transactionType,
		orderType:       orderType,
	}, nil
}

// Products returns the order's product quantities. The map is the one
// passed to NewOrder, not a copy.
func (o Order) Products() map[Product]int { return o.products }

// TransactionType returns whether the order buys or sells.
func (o Order) TransactionType() TransactionType { return o.transactionType }

// OrderType returns the order's Add/Remove tag.
func (o Order) OrderType() OrderType { return o.orderType }

// Total is the order's total value: the sum of quantity times unit
// price over every product line. An empty order totals zero.
func (o Order) Total() float64 {
	var total float64
	for product, quantity := range o.products {
		total += float64(quantity) * product.price
	}
	return total
}
