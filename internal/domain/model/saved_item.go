package model

import "time"

// 保存した商品（あとで見る）。保存時点のスナップショット。
type SavedItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID string    `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"image_url"`
	ShopID    string    `gorm:"type:uuid" json:"shop_id"`
	ShopName  string    `gorm:"type:varchar(255)" json:"shop_name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
