package model

import "time"

// CartItemModel mirrors the 'cart_items' table. (user_id, product_id) is unique,
// which is what the add-to-cart upsert conflicts on.
type CartItemModel struct {
	ID        uint          `gorm:"primaryKey"`
	UserID    uint          `gorm:"not null;uniqueIndex:cart_items_user_product_key"`
	ProductID uint          `gorm:"not null;uniqueIndex:cart_items_user_product_key"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;default:1"`
	AddedAt   time.Time     `gorm:"autoCreateTime"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
