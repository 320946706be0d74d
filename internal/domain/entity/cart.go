package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart.
type CartItem struct {
	ID        uint
	UserID    uint
	ProductID uint
	Product   *Product
	Quantity  int
	AddedAt   time.Time
}

// LineTotal is price times quantity; a missing product contributes zero.
func (i *CartItem) LineTotal() decimal.Decimal {
	if i == nil || i.Product == nil || i.Quantity <= 0 {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a user's items together with their running total.
type Cart struct {
	Items []*CartItem
	Total decimal.Decimal
}

// NewCart computes the total over items.
func NewCart(items []*CartItem) *Cart {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return &Cart{Items: items, Total: total}
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
