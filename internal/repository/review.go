package repository

import (
	"context"

	"campusmarket/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)
	//トップページ表示用（isFeatured=trueのみ、新しい順）
	ListFeatured(ctx context.Context, limit int) ([]model.Review, error)
	SetFeatured(ctx context.Context, reviewID string, featured bool) error
}
