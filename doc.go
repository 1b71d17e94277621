// Package models implements a small in-memory book of trade orders.
//
// A Product couples a name with a unit price. An Order groups Products
// with integer quantities under a TransactionType (Buy or Sell) and an
// OrderType (Add or Remove). An OrderBook assigns sequential
// identifiers to inserted orders and, after every insertion, reports
// the stored order with the highest total value for each transaction
// type:
//
//	banana := models.NewProduct("Banana", 4.5)
//
//	order, err := models.NewOrder(map[models.Product]int{banana: 10}, models.Buy, models.Add)
//	if err != nil {
//		// The transaction or order type was not a declared member.
//	}
//
//	book := models.NewOrderBook()
//	book.AddOrder(order)
//	// Best Buy Order: ID = 1, Price = 45.0
//
// Products are compared by identity, not by value: two separately
// constructed Products with the same name and price are distinct line
// items within an order. The book is append-only and assumes a single
// caller; nothing in this package is safe for concurrent use.
package models
