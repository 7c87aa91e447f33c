package model

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleAdmin    Role = "ADMIN"
)

// Roleはサインアップ後に変更不可。
// Approvedはベンダーのみ意味を持つ（管理者が承認するまでfalse）。
type User struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	UserName     string     `gorm:"type:varchar(255);not null" json:"user_name"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	Approved     bool       `gorm:"not null;default:false" json:"approved"`
	Phone        string     `gorm:"type:varchar(30)" json:"phone"`
	Address      string     `gorm:"type:varchar(255)" json:"address"`
	City         string     `gorm:"type:varchar(100)" json:"city"`
	State        string     `gorm:"type:varchar(100)" json:"state"`
	ZipCode      string     `gorm:"type:varchar(20)" json:"zip_code"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
