package repository

import (
	"context"
	"time"

	"campusmarket/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *string
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	//明細込みで作成（CartPurged=falseのまま入る）
	Create(ctx context.Context, order model.Order) error
	//明細込みで取得
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	//カート削除が完了した印をつける
	MarkCartPurged(ctx context.Context, orderID string) error
	//削除しきれていない注文（次回ロード時の後始末対象）
	ListUnpurgedByUser(ctx context.Context, userID string) ([]model.Order, error)

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	//売上レポート用：指定ショップ群の注文明細
	ListItemsByShops(ctx context.Context, shopIDs []string, from, to *time.Time) ([]model.OrderItem, error)
}
