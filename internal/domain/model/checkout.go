package model

import "time"

type CheckoutStep string

const (
	CheckoutStepShipping     CheckoutStep = "shipping"
	CheckoutStepPayment      CheckoutStep = "payment"
	CheckoutStepConfirmation CheckoutStep = "confirmation"
)

// チェックアウトの3ステップの進行状態。Redisに保持（TTLあり）。
// shipping → payment → confirmation。confirmationが終端。
// paymentからshippingへは「戻る」でのみ遷移でき、フォーム入力は保持される。
type CheckoutSession struct {
	UserID    string          `json:"user_id"`
	Step      CheckoutStep    `json:"step"`
	Shipping  ShippingDetails `json:"shipping"`
	TxRef     string          `json:"tx_ref,omitempty"`
	OrderID   string          `json:"order_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
