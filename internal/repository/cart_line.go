package repository

import (
	"context"
	"time"

	"campusmarket/internal/domain/model"
)

type CartLineRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.CartLine, error)
	FindByID(ctx context.Context, lineID string) (model.CartLine, error)
	// (user, product, size) で1行。無ければErrNotFound
	FindByUserProductSize(ctx context.Context, userID, productID, size string) (model.CartLine, error)
	Create(ctx context.Context, line model.CartLine) (model.CartLine, error)
	UpdateQuantity(ctx context.Context, lineID string, qty int64) error
	DeleteByID(ctx context.Context, lineID string) error
	// 注文済み明細の後始末用。beforeより前に入った行だけ消す
	DeleteByUserProductSizeBefore(ctx context.Context, userID, productID, size string, before time.Time) error
	IsOwnedByUser(ctx context.Context, lineID string, userID string) (bool, error)
}
