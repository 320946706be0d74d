package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. UserID becomes NULL when the account is deleted.
type OrderModel struct {
	ID              uint              `gorm:"primaryKey"`
	UserID          *uint             `gorm:"index"`
	Status          string            `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingAddress string            `gorm:"type:text;not null;default:''"`
	Phone           string            `gorm:"type:varchar(20);not null;default:''"`
	Email           string            `gorm:"type:varchar(254);not null;default:''"`
	TotalAmount     decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	Items           []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the snapshot taken at checkout.
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID *uint           `gorm:"index"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
