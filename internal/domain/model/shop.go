package model

import (
	"time"

	"gorm.io/gorm"
)

// ショップ（ベンダーが作成、管理者が承認）。
// Approvedは作成時false。name/category/descriptionの編集で承認が取り消される。
type Shop struct {
	ID              string         `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID        string         `gorm:"type:uuid;not null;index" json:"vendor_id"`
	VendorName      string         `gorm:"type:varchar(255)" json:"vendor_name"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Category        string         `gorm:"type:varchar(100);not null;index" json:"category"`
	Description     string         `gorm:"type:text" json:"description"`
	Address         string         `gorm:"type:varchar(255)" json:"address"`
	City            string         `gorm:"type:varchar(100)" json:"city"`
	State           string         `gorm:"type:varchar(100)" json:"state"`
	Phone           string         `gorm:"type:varchar(30)" json:"phone"`
	Approved        bool           `gorm:"not null;default:false;index" json:"approved"`
	Active          bool           `gorm:"not null;default:true" json:"active"`
	StatusUpdatedAt *time.Time     `json:"status_updated_at,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
