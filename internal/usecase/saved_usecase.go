package usecase

import (
	"context"
	"net/http"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

// SavedUsecase は「あとで見る」保存リスト。
type SavedUsecase struct {
	savedRepo   repo.SavedItemRepository
	productRepo repo.ProductRepository
	shopRepo    repo.ShopRepository
	idGen       IDGenerator
}

func NewSavedUsecase(
	savedRepo repo.SavedItemRepository,
	productRepo repo.ProductRepository,
	shopRepo repo.ShopRepository,
	idGen IDGenerator,
) *SavedUsecase {
	return &SavedUsecase{
		savedRepo:   savedRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		idGen:       idGen,
	}
}

func (u *SavedUsecase) List(ctx context.Context, userID string) ([]model.SavedItem, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// Save は商品を保存。既に保存済みならそれを返す（重複させない）。
func (u *SavedUsecase) Save(ctx context.Context, userID, productID string) (model.SavedItem, error) {
	if userID == "" {
		return model.SavedItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return model.SavedItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	existing, err := u.savedRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if err != repo.ErrNotFound {
		return model.SavedItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindVisibleByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.SavedItem{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return model.SavedItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	shopName := ""
	if s, err := u.shopRepo.FindByID(ctx, p.ShopID); err == nil {
		shopName = s.Name
	}

	item := model.SavedItem{
		ID:        u.idGen.NewID(),
		UserID:    userID,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		ShopID:    p.ShopID,
		ShopName:  shopName,
	}

	created, err := u.savedRepo.Create(ctx, item)
	if err != nil {
		return model.SavedItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *SavedUsecase) Remove(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.savedRepo.IsOwnedByUser(ctx, itemID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.savedRepo.DeleteByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
