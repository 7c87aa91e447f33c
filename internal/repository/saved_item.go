package repository

import (
	"context"

	"campusmarket/internal/domain/model"
)

type SavedItemRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.SavedItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (model.SavedItem, error)
	Create(ctx context.Context, item model.SavedItem) (model.SavedItem, error)
	DeleteByID(ctx context.Context, itemID string) error
	IsOwnedByUser(ctx context.Context, itemID string, userID string) (bool, error)
}
