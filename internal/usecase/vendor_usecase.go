package usecase

import (
	"context"
	"net/http"
	"strings"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

// VendorUsecase はベンダー自身のショップ・商品の管理。
type VendorUsecase struct {
	shopRepo    repo.ShopRepository
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock
}

func NewVendorUsecase(
	shopRepo repo.ShopRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *VendorUsecase {
	return &VendorUsecase{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

type ShopInput struct {
	Name        string
	Category    string
	Description string
	Address     string
	City        string
	State       string
	Phone       string
}

type ProductInput struct {
	ShopID      string
	Name        string
	Description string
	Price       int64
	Quantity    int64
	Category    string
	ImageURL    string
}

// CreateShop は新規ショップ作成。承認待ち（approved=false）で始まる。
func (u *VendorUsecase) CreateShop(ctx context.Context, vendorID, vendorName string, in ShopInput) (model.Shop, error) {
	if vendorID == "" {
		return model.Shop{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "category is required")
	}

	shop := model.Shop{
		ID:          u.idGen.NewID(),
		VendorID:    vendorID,
		VendorName:  vendorName,
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Phone:       in.Phone,
		Approved:    false,
		Active:      true,
	}

	created, err := u.shopRepo.Create(ctx, shop)
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// UpdateShop はショップ編集。
// 承認済みの状態でname/category/descriptionを変えると承認が取り消され、
// 再承認は管理者の明示的な操作でのみ行われる。
// 連絡先（住所・電話）だけの変更では承認は維持される。
func (u *VendorUsecase) UpdateShop(ctx context.Context, vendorID, shopID string, in ShopInput) (model.Shop, error) {
	if vendorID == "" {
		return model.Shop{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if err == repo.ErrNotFound {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.VendorID != vendorID {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "category is required")
	}

	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)

	significant := shop.Name != name ||
		shop.Category != category ||
		shop.Description != in.Description

	shop.Name = name
	shop.Category = category
	shop.Description = in.Description
	shop.Address = in.Address
	shop.City = in.City
	shop.State = in.State
	shop.Phone = in.Phone

	if shop.Approved && significant {
		now := u.clock.Now()
		shop.Approved = false
		shop.StatusUpdatedAt = &now
	}

	if err := u.shopRepo.Update(ctx, shop); err != nil {
		if err == repo.ErrNotFound {
			return model.Shop{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shop, nil
}

func (u *VendorUsecase) DeleteShop(ctx context.Context, vendorID, shopID string) error {
	if vendorID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.VendorID != vendorID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.shopRepo.SoftDelete(ctx, shopID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *VendorUsecase) ListMyShops(ctx context.Context, vendorID string) ([]model.Shop, error) {
	if vendorID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shops, err := u.shopRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

// CreateProduct は自分のショップへの商品登録。
// price > 0, quantity >= 1 を入力時に強制する。
func (u *VendorUsecase) CreateProduct(ctx context.Context, vendorID string, in ProductInput) (model.Product, error) {
	if vendorID == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	shop, err := u.shopRepo.FindByID(ctx, in.ShopID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid shop_id")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.VendorID != vendorID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	p := model.Product{
		ID:          u.idGen.NewID(),
		ShopID:      shop.ID,
		VendorID:    vendorID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *VendorUsecase) UpdateProduct(ctx context.Context, vendorID, productID string, in ProductInput) (model.Product, error) {
	if vendorID == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.VendorID != vendorID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.Category = in.Category
	p.ImageURL = in.ImageURL

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *VendorUsecase) DeleteProduct(ctx context.Context, vendorID, productID string) error {
	if vendorID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.VendorID != vendorID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *VendorUsecase) ListMyProducts(ctx context.Context, vendorID string) ([]model.Product, error) {
	if vendorID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	products, err := u.productRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.ShopID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid shop_id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.Quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}
	return nil
}
