package usecase

import (
	"context"
	"net/http"
	"strings"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

// CatalogUsecase は公開側の閲覧（商品・ショップ・検索）。
// 公開条件の絞り込みはRepository側のVisibleスコープに寄せてある。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
	shopRepo    repo.ShopRepository
}

func NewCatalogUsecase(productRepo repo.ProductRepository, shopRepo repo.ShopRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo, shopRepo: shopRepo}
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
	Sort     string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListVisible(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Category: strings.TrimSpace(in.Category),
		Sort:     in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// SearchProducts は商品名の前方一致検索。空クエリは空の結果。
func (u *CatalogUsecase) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.Product{}, nil
	}
	if len(q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, err := u.productRepo.SearchByNamePrefix(ctx, q, 50)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) ListPopularProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListPopular(ctx, 8)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindVisibleByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) ListShops(ctx context.Context, category string) ([]model.Shop, error) {
	var (
		shops []model.Shop
		err   error
	)
	if category = strings.TrimSpace(category); category != "" {
		shops, err = u.shopRepo.ListVisibleByCategory(ctx, category)
	} else {
		shops, err = u.shopRepo.ListVisible(ctx)
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

func (u *CatalogUsecase) GetShop(ctx context.Context, shopID string) (model.Shop, error) {
	if shopID == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.shopRepo.FindVisibleByID(ctx, shopID)
	if err == repo.ErrNotFound {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// ショップ自体が非公開なら商品も見せない（404）。
func (u *CatalogUsecase) ListShopProducts(ctx context.Context, shopID string) ([]model.Product, error) {
	if _, err := u.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	items, err := u.productRepo.ListVisibleByShop(ctx, shopID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
