package repository

import (
	"context"
	"errors"
	"time"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

// DI
func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) ListVisible(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Scopes(VisibleShops).
		Order("created_at desc").
		Find(&shops).Error
	if err != nil {
		return []model.Shop{}, err
	}
	return shops, nil
}

func (r *ShopGormRepository) ListVisibleByCategory(ctx context.Context, category string) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Scopes(VisibleShops).
		Where("category = ?", category).
		Order("created_at desc").
		Find(&shops).Error
	if err != nil {
		return []model.Shop{}, err
	}
	return shops, nil
}

func (r *ShopGormRepository) FindByID(ctx context.Context, shopID string) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) FindVisibleByID(ctx context.Context, shopID string) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).
		Scopes(VisibleShops).
		Where("id = ?", shopID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) ListByVendor(ctx context.Context, vendorID string) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at asc").
		Find(&shops).Error
	if err != nil {
		return []model.Shop{}, err
	}
	return shops, nil
}

func (r *ShopGormRepository) ListPendingApproval(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at asc").
		Find(&shops).Error
	if err != nil {
		return []model.Shop{}, err
	}
	return shops, nil
}

func (r *ShopGormRepository) Create(ctx context.Context, s model.Shop) (model.Shop, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) Update(ctx context.Context, s model.Shop) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":              s.Name,
		"category":          s.Category,
		"description":       s.Description,
		"address":           s.Address,
		"city":              s.City,
		"state":             s.State,
		"phone":             s.Phone,
		"approved":          s.Approved,
		"active":            s.Active,
		"status_updated_at": s.StatusUpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) SetApproval(ctx context.Context, shopID string, approved bool, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).Where("id = ?", shopID).Updates(map[string]interface{}{
		"approved":          approved,
		"status_updated_at": at,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) SoftDelete(ctx context.Context, shopID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", shopID).Delete(&model.Shop{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Shop{}).Count(&count).Error
	return count, err
}

func (r *ShopGormRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Shop{}).Where("approved = ?", false).Count(&count).Error
	return count, err
}
