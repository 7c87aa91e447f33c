package model

import (
	"time"

	"gorm.io/gorm"
)

// 価格は整数ナイラ単位。Price > 0, Quantity >= 1 は入力時に強制する。
type Product struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID      string         `gorm:"type:uuid;not null;index" json:"shop_id"`
	VendorID    string         `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name        string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	Quantity    int64          `gorm:"not null" json:"quantity"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url"`
	IsPopular   bool           `gorm:"not null;default:false;index" json:"is_popular"`
	SalesCount  int64          `gorm:"not null;default:0" json:"sales_count"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
