package repository

import (
	"context"
	"errors"
	"time"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"

	"gorm.io/gorm"
)

type CartLineGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartLineGormRepository(db *gorm.DB) *CartLineGormRepository {
	return &CartLineGormRepository{db: db}
}

func (r *CartLineGormRepository) ListByUser(ctx context.Context, userID string) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&lines).Error
	if err != nil {
		return []model.CartLine{}, err
	}
	return lines, nil
}

func (r *CartLineGormRepository) FindByID(ctx context.Context, lineID string) (model.CartLine, error) {
	var line model.CartLine
	err := r.db.WithContext(ctx).Where("id = ?", lineID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartLine{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

func (r *CartLineGormRepository) FindByUserProductSize(ctx context.Context, userID, productID, size string) (model.CartLine, error) {
	var line model.CartLine
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartLine{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

func (r *CartLineGormRepository) Create(ctx context.Context, line model.CartLine) (model.CartLine, error) {
	if err := r.db.WithContext(ctx).Create(&line).Error; err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

func (r *CartLineGormRepository) UpdateQuantity(ctx context.Context, lineID string, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartLine{}).
		Where("id = ?", lineID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartLineGormRepository) DeleteByID(ctx context.Context, lineID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", lineID).Delete(&model.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文済み明細の後始末。注文より後に入れ直した行は消さない。
// 該当行が無くてもエラーにしない。
func (r *CartLineGormRepository) DeleteByUserProductSizeBefore(ctx context.Context, userID, productID, size string, before time.Time) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ? AND created_at < ?", userID, productID, size, before).
		Delete(&model.CartLine{}).Error
}

func (r *CartLineGormRepository) IsOwnedByUser(ctx context.Context, lineID string, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CartLine{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
