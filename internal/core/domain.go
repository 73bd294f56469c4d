package core

import (
	"errors"
	"strings"
)

type (
	// Item is a single product or service line within an order.
	// The json tags match the blob layout of the original mobile app,
	// which named the product field "item".
	Item struct {
		Name     string `json:"item"`
		Price    string `json:"price"`
		IsGift   bool   `json:"isGift"`
		Customer string `json:"customer,omitempty"`
	}

	// Order is a dated transaction aggregate: one or more items, a discount
	// percentage applied to the whole order, and a unique identifier assigned
	// at first save.
	Order struct {
		ID              string `json:"id"`
		Date            Date   `json:"orderDate"`
		DiscountPercent string `json:"discountPercent"`
		Items           []Item `json:"items"`
	}
)

var (
	ErrNoItems         = errors.New("order has no items")
	ErrIncompleteItem  = errors.New("incomplete item")
	ErrMissingID       = errors.New("missing order id")
	ErrInvalidDiscount = errors.New("invalid discount percent")
)

// Complete reports whether the item has enough data to be saved.
// The editor refuses to add another row while the previous one is incomplete.
func (i Item) Complete() bool {
	return strings.TrimSpace(i.Name) != "" && strings.TrimSpace(i.Price) != ""
}

// Validate checks the editor-boundary invariants: at least one item, every
// item complete, and a discount percent that is either empty or a number in
// [0,100]. Legacy data that violates these still loads and aggregates; the
// check only gates new writes.
func (o Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range o.Items {
		if !it.Complete() {
			return ErrIncompleteItem
		}
	}
	if s := strings.TrimSpace(o.DiscountPercent); s != "" {
		p, ok := parseFloat(s)
		if !ok || p < 0 || p > 100 {
			return ErrInvalidDiscount
		}
	}
	return nil
}

// Clone returns a copy whose items slice does not alias the receiver's.
func (o Order) Clone() Order {
	dup := o
	dup.Items = append([]Item(nil), o.Items...)
	return dup
}
