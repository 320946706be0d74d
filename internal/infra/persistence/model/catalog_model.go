package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;default:''"`
	Description string `gorm:"type:text;not null;default:''"`
	Image       string `gorm:"type:varchar(255);not null;default:''"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Price is nullable.
type ProductModel struct {
	ID          uint                `gorm:"primaryKey"`
	Name        string              `gorm:"type:varchar(200);not null;default:''"`
	Description string              `gorm:"type:text;not null;default:''"`
	Price       decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Image       string              `gorm:"type:varchar(255);not null;default:''"`
	CategoryID  *uint               `gorm:"index"`
	Category    *CategoryModel      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
