package model

import "time"

// レビュー。IsFeaturedは管理者がトップページ表示用に付けるフラグ。
type Review struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName   string    `gorm:"type:varchar(255);not null" json:"user_name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	IsFeatured bool      `gorm:"not null;default:false;index" json:"is_featured"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
