package repository

import (
	"context"
	"time"

	"campusmarket/internal/domain/model"
)

// ショップの永続化（保存・取得）だけを約束。
type ShopRepository interface {
	//公開ショップの一覧（approved && active のみ）
	ListVisible(ctx context.Context) ([]model.Shop, error)
	ListVisibleByCategory(ctx context.Context, category string) ([]model.Shop, error)
	FindByID(ctx context.Context, shopID string) (model.Shop, error)
	//公開条件を満たすショップのみ返す（満たさなければErrNotFound）
	FindVisibleByID(ctx context.Context, shopID string) (model.Shop, error)
	ListByVendor(ctx context.Context, vendorID string) ([]model.Shop, error)
	ListPendingApproval(ctx context.Context) ([]model.Shop, error)

	Create(ctx context.Context, s model.Shop) (model.Shop, error)
	Update(ctx context.Context, s model.Shop) error
	//承認フラグの更新。statusUpdatedAtを必ず上書きする
	SetApproval(ctx context.Context, shopID string, approved bool, at time.Time) error
	SoftDelete(ctx context.Context, shopID string) error

	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}
