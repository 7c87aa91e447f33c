package repository

import (
	"context"
	"errors"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"

	"gorm.io/gorm"
)

type SavedItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewSavedItemGormRepository(db *gorm.DB) *SavedItemGormRepository {
	return &SavedItemGormRepository{db: db}
}

func (r *SavedItemGormRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedItem, error) {
	var items []model.SavedItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.SavedItem{}, err
	}
	return items, nil
}

func (r *SavedItemGormRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (model.SavedItem, error) {
	var item model.SavedItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SavedItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SavedItem{}, err
	}
	return item, nil
}

func (r *SavedItemGormRepository) Create(ctx context.Context, item model.SavedItem) (model.SavedItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.SavedItem{}, err
	}
	return item, nil
}

func (r *SavedItemGormRepository) DeleteByID(ctx context.Context, itemID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.SavedItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SavedItemGormRepository) IsOwnedByUser(ctx context.Context, itemID string, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SavedItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
