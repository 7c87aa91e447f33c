package model

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 配送先情報（チェックアウトのフォーム入力）。
type ShippingDetails struct {
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string `gorm:"type:varchar(30);not null" json:"phone"`
	Address  string `gorm:"type:varchar(255);not null" json:"address"`
	City     string `gorm:"type:varchar(100);not null" json:"city"`
	State    string `gorm:"type:varchar(100);not null" json:"state"`
	ZipCode  string `gorm:"type:varchar(20)" json:"zip_code"`
	Notes    string `gorm:"type:text" json:"notes"`
}

// total = subtotal + shipping。shippingは小計が10,000超なら0、以下なら1,500。
type OrderSummary struct {
	Subtotal int64 `gorm:"not null" json:"subtotal"`
	Shipping int64 `gorm:"not null" json:"shipping"`
	Total    int64 `gorm:"not null" json:"total"`
}

type PaymentInfo struct {
	Method    string `gorm:"type:varchar(50);not null" json:"method"`
	Reference string `gorm:"type:varchar(255);not null" json:"reference"`
	Status    string `gorm:"type:varchar(20);not null" json:"status"`
	Amount    int64  `gorm:"not null" json:"amount"`
}

// 注文。決済成功コールバック後に作成される。
// CartPurgedは二段階削除のマーカー（カート明細の削除が完了したらtrue）。
type Order struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	Shipping   ShippingDetails `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_details"`
	Summary    OrderSummary    `gorm:"embedded;embeddedPrefix:summary_" json:"order_summary"`
	Payment    PaymentInfo     `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	CartPurged bool            `gorm:"not null;default:false" json:"-"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 注文明細（ラインスナップショット）。作成後は不変で、
// 元のCartLine/Productが変わっても影響を受けない。
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string    `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string    `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"image_url"`
	ShopID    string    `gorm:"type:uuid;index" json:"shop_id"`
	ShopName  string    `gorm:"type:varchar(255)" json:"shop_name"`
	Size      string    `gorm:"type:varchar(50)" json:"size,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
