// Package model holds the GORM table mappings. Schema changes go through
// the SQL migrations, never through AutoMigrate.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(254);not null;default:'';index"`
	Phone        string `gorm:"type:varchar(20);not null;default:'';index"`
	FirstName    string `gorm:"type:varchar(150);not null;default:''"`
	LastName     string `gorm:"type:varchar(150);not null;default:''"`
	Address      string `gorm:"type:text;not null;default:''"`
	City         string `gorm:"type:varchar(100);not null;default:''"`
	Country      string `gorm:"type:varchar(100);not null;default:''"`
	Avatar       string `gorm:"type:varchar(255);not null;default:''"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
