package models

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/btree"
)

// bookEntry pairs a stored order with its assigned identifier.
type bookEntry struct {
	id    int
	order Order
}

type orderLedger = btree.BTreeG[bookEntry]

// OrderBook collects orders under sequential identifiers and reports,
// after every insertion, the best (highest total value) order per
// transaction type.
//
// The book only ever grows. Identifier assignment reads the current
// size, so concurrent AddOrder calls would race; orders are expected to
// arrive from a single caller.
type OrderBook struct {
	orders *orderLedger
	out    io.Writer
}

// NewOrderBook returns an empty book reporting to stdout.
func NewOrderBook() *OrderBook {
	// Sorted by ascending identifier, i.e. insertion order.
	orders := btree.NewBTreeG(func(a, b bookEntry) bool {
		return a.id < b.id
	})
	return &OrderBook{
		orders: orders,
		out:    os.Stdout,
	}
}

// SetOutput redirects the best-order report, which otherwise goes to
// stdout.
func (b *OrderBook) SetOutput(w io.Writer) {
	b.out = w
}

// NextID returns the identifier the next inserted order will receive:
// one past the number of stored orders. Orders are never removed, so
// identifiers are 1-based, strictly increasing and gap-free.
func (b *OrderBook) NextID() int {
	return b.orders.Len() + 1
}

// Len returns the number of stored orders.
func (b *OrderBook) Len() int {
	return b.orders.Len()
}

// Order returns the stored order with the given identifier.
func (b *OrderBook) Order(id int) (Order, bool) {
	entry, ok := b.orders.Get(bookEntry{id: id})
	return entry.order, ok
}

// AddOrder stores the order under the next identifier and immediately
// writes the refreshed best-order report. The order is trusted as
// constructed; nothing is re-validated here.
func (b *OrderBook) AddOrder(order Order) {
	b.orders.Set(bookEntry{id: b.NextID(), order: order})
	b.DisplayBestPrice()
}

// BestOrder names the best stored order for one transaction type.
type BestOrder struct {
	TransactionType TransactionType
	ID              int
	Total           float64
}

// BestOrders recomputes the best order per transaction type over every
// stored order, visiting them in ascending identifier order. The first
// order of a type seeds its record and later orders displace it only
// with a strictly greater total, so ties stay with the lowest
// identifier. The result lists each represented type in the order it
// was first seen.
func (b *OrderBook) BestOrders() []BestOrder {
	var bests []BestOrder
	seen := make(map[TransactionType]int)

	b.orders.Scan(func(entry bookEntry) bool {
		total := entry.order.Total()
		at, ok := seen[entry.order.transactionType]
		if !ok {
			seen[entry.order.transactionType] = len(bests)
			bests = append(bests, BestOrder{
				TransactionType: entry.order.transactionType,
				ID:              entry.id,
				Total:           total,
			})
			return true
		}
		if total > bests[at].Total {
			bests[at] = BestOrder{
				TransactionType: entry.order.transactionType,
				ID:              entry.id,
				Total:           total,
			}
		}
		return true
	})

	return bests
}

// DisplayBestPrice writes one report line per represented transaction
// type to the configured writer:
//
//	Best Buy Order: ID = 1, Price = 9801.0
//
// The report is recomputed from scratch over all stored orders on
// every call.
func (b *OrderBook) DisplayBestPrice() {
	for _, best := range b.BestOrders() {
		fmt.Fprintf(b.out, "Best %s Order: ID = %d, Price = %s\n",
			best.TransactionType, best.ID, formatTotal(best.Total))
	}
}

// formatTotal renders a total the way the report expects: the shortest
// decimal that round-trips, never exponent notation, with ".0" kept on
// integral values.
func formatTotal(total float64) string {
	s := strconv.FormatFloat(total, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsInf(total, 0) && !math.IsNaN(total) {
		s += ".0"
	}
	return s
}
