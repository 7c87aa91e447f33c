package model

import "time"

// カート明細。追加時点の商品情報（名前・価格・画像・ショップ）を保持する。
// (user, product, size) につき1行（Upsertで数量加算）。
type CartLine struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID string    `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Size      string    `gorm:"type:varchar(50)" json:"size,omitempty"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"image_url"`
	ShopID    string    `gorm:"type:uuid" json:"shop_id"`
	ShopName  string    `gorm:"type:varchar(255)" json:"shop_name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
