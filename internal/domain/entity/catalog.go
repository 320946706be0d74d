package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Deleting a category leaves its products uncategorised.
type Category struct {
	ID          uint
	Name        string
	Description string
	Image       string
}

// Product is a catalog entry. A product without a price reads as zero.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	CategoryID  *uint
	Category    *Category
	CreatedAt   time.Time
}

// ProductFilter narrows a catalog listing. Nil fields are not applied.
type ProductFilter struct {
	CategoryID *uint
	Query      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int
}
