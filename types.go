package models

import (
	"fmt"
	"strings"
)

// TransactionType tells whether an order buys or sells its products.
type TransactionType int

const (
	Buy TransactionType = iota
	Sell
)

// OrderType tags an order as adding to or removing from the book. The
// book records the tag but never acts on it: a Remove order is stored
// like any other and cancels nothing.
type OrderType int

const (
	Add OrderType = iota
	Remove
)

var transactionTypeName = map[TransactionType]string{
	Buy:  "Buy",
	Sell: "Sell",
}

var orderTypeName = map[OrderType]string{
	Add:    "Add",
	Remove: "Remove",
}

// Valid reports whether t is one of the declared transaction types.
func (t TransactionType) Valid() bool {
	_, ok := transactionTypeName[t]
	return ok
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeName[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", int(t))
}

// Valid reports whether o is one of the declared order types.
func (o OrderType) Valid() bool {
	_, ok := orderTypeName[o]
	return ok
}

func (o OrderType) String() string {
	if name, ok := orderTypeName[o]; ok {
		return name
	}
	return fmt.Sprintf("OrderType(%d)", int(o))
}

// ParseTransactionType maps a label such as "Buy" back to its
// TransactionType, ignoring case. Unknown labels return
// ErrInvalidTransactionType.
func ParseTransactionType(label string) (TransactionType, error) {
	for t, name := range transactionTypeName {
		if strings.EqualFold(label, name) {
			return t, nil
		}
	}
	return 0, ErrInvalidTransactionType
}

// ParseOrderType maps a label such as "Add" back to its OrderType,
// ignoring case. Unknown labels return ErrInvalidOrderType.
func ParseOrderType(label string) (OrderType, error) {
	for o, name := range orderTypeName {
		if strings.EqualFold(label, name) {
			return o, nil
		}
	}
	return 0, ErrInvalidOrderType
}
