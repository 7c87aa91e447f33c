package usecase

import (
	"context"
	"net/http"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

// AdminUsecase は承認ゲートの操作と管理ダッシュボード。
// 承認フラグの false→true / true→false を行えるのは管理者だけ。
type AdminUsecase struct {
	userRepo    repo.UserRepository
	shopRepo    repo.ShopRepository
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
	clock       Clock
}

func NewAdminUsecase(
	userRepo repo.UserRepository,
	shopRepo repo.ShopRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	clock Clock,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		clock:       clock,
	}
}

type OverviewOutput struct {
	TotalUsers      int64 `json:"total_users"`
	TotalVendors    int64 `json:"total_vendors"`
	TotalShops      int64 `json:"total_shops"`
	TotalProducts   int64 `json:"total_products"`
	PendingVendors  int64 `json:"pending_vendors"`
	PendingShops    int64 `json:"pending_shops"`
	PopularProducts int64 `json:"popular_products"`
}

func (u *AdminUsecase) Overview(ctx context.Context) (OverviewOutput, error) {
	var out OverviewOutput
	var err error

	if out.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalVendors, err = u.userRepo.CountByRole(ctx, model.RoleVendor); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalShops, err = u.shopRepo.Count(ctx); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalProducts, err = u.productRepo.Count(ctx); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.PendingShops, err = u.shopRepo.CountPending(ctx); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.PopularProducts, err = u.productRepo.CountPopular(ctx); err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pending, err := u.userRepo.ListPendingVendors(ctx)
	if err != nil {
		return OverviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.PendingVendors = int64(len(pending))

	return out, nil
}

func (u *AdminUsecase) ListPendingVendors(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.ListPendingVendors(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

func (u *AdminUsecase) ListPendingShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := u.shopRepo.ListPendingApproval(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

// SetVendorApproval はベンダー承認の切り替え。
// 同じ値を二度設定しても観測される状態は変わらない。
func (u *AdminUsecase) SetVendorApproval(ctx context.Context, vendorID string, approved bool) error {
	if vendorID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.userRepo.FindByID(ctx, vendorID)
	if err == repo.ErrUserNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user.Role != model.RoleVendor {
		return NewHTTPError(http.StatusBadRequest, "not a vendor")
	}

	if err := u.userRepo.SetApproval(ctx, vendorID, approved); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetShopApproval はショップ承認の切り替え。
// statusUpdatedAtは毎回「最後の書き込み時刻」で上書きされる。
func (u *AdminUsecase) SetShopApproval(ctx context.Context, shopID string, approved bool) error {
	if shopID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.shopRepo.SetApproval(ctx, shopID, approved, u.clock.Now())
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetProductPopular はおすすめフラグの切り替え（承認とは無関係の販促フラグ）。
func (u *AdminUsecase) SetProductPopular(ctx context.Context, productID string, popular bool) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.SetPopular(ctx, productID, popular)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	UserID *string
}

type AdminOrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *AdminUsecase) ListOrders(ctx context.Context, in AdminOrderListInput) (AdminOrderListOutput, error) {
	if in.Page < 1 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
		UserID: in.UserID,
	})
	if err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminOrderListOutput{
		Items: orders,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *AdminUsecase) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	switch model.OrderStatus(status) {
	case model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatus(status))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
