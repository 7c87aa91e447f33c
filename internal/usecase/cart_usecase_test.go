package usecase_test

import (
	"context"
	"testing"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
	"campusmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartUsecase(cartRepo *CartRepoMock, productRepo *ProductRepoMock, shopRepo *ShopRepoMock, orderRepo *OrderRepoMock) *usecase.CartUsecase {
	return usecase.NewCartUsecase(cartRepo, productRepo, shopRepo, orderRepo, &seqIDGen{})
}

// =====================
// 送料計算
// =====================

func TestComputeSummary_FlatFeeBelowThreshold(t *testing.T) {
	lines := []model.CartLine{
		{Price: 1000, Quantity: 2},
	}

	s := usecase.ComputeSummary(lines)
	assert.Equal(t, int64(2000), s.Subtotal)
	assert.Equal(t, int64(1500), s.Shipping)
	assert.Equal(t, int64(3500), s.Total)
}

// 閾値ちょうど（10000）は無料にならない
func TestComputeSummary_ExactThresholdStillCharged(t *testing.T) {
	lines := []model.CartLine{
		{Price: 10000, Quantity: 1},
	}

	s := usecase.ComputeSummary(lines)
	assert.Equal(t, int64(10000), s.Subtotal)
	assert.Equal(t, int64(1500), s.Shipping)
	assert.Equal(t, int64(11500), s.Total)
}

func TestComputeSummary_FreeAboveThreshold(t *testing.T) {
	lines := []model.CartLine{
		{Price: 10001, Quantity: 1},
	}

	s := usecase.ComputeSummary(lines)
	assert.Equal(t, int64(10001), s.Subtotal)
	assert.Equal(t, int64(0), s.Shipping)
	assert.Equal(t, int64(10001), s.Total)
}

// 空カートでも送料は定額のまま（合計1500）
func TestComputeSummary_EmptyCart(t *testing.T) {
	s := usecase.ComputeSummary(nil)
	assert.Equal(t, int64(0), s.Subtotal)
	assert.Equal(t, int64(1500), s.Shipping)
	assert.Equal(t, int64(1500), s.Total)
}

// =====================
// 数量変更
// =====================

func TestCartUsecase_UpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	uc := newCartUsecase(cartRepo, new(ProductRepoMock), new(ShopRepoMock), new(OrderRepoMock))

	lines := []model.CartLine{
		{ID: "line-1", UserID: "u1", ProductID: "p1", Price: 500, Quantity: 2},
	}
	cartRepo.On("IsOwnedByUser", mock.Anything, "line-1", "u1").Return(true, nil)
	cartRepo.On("ListByUser", mock.Anything, "u1").Return(lines, nil)

	out, err := uc.UpdateQuantity(ctx, "u1", "line-1", usecase.UpdateCartLineInput{Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Items[0].Quantity)

	// 書き込みは発生しない
	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_UpdateQuantity_NotOwned(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	uc := newCartUsecase(cartRepo, new(ProductRepoMock), new(ShopRepoMock), new(OrderRepoMock))

	cartRepo.On("IsOwnedByUser", mock.Anything, "line-x", "u1").Return(false, nil)

	_, err := uc.UpdateQuantity(ctx, "u1", "line-x", usecase.UpdateCartLineInput{Quantity: 3})
	assertErrContains(t, err, "not found")
}

// =====================
// 追加
// =====================

func TestCartUsecase_AddToCart_InvisibleProductRejected(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	uc := newCartUsecase(new(CartRepoMock), productRepo, new(ShopRepoMock), new(OrderRepoMock))

	productRepo.On("FindVisibleByID", mock.Anything, "p1").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(ctx, "u1", usecase.AddCartInput{ProductID: "p1", Quantity: 1})
	assertErrContains(t, err, "invalid product")
}

func TestCartUsecase_AddToCart_SameProductSameSizeMergesQuantity(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	shopRepo := new(ShopRepoMock)
	uc := newCartUsecase(cartRepo, productRepo, shopRepo, new(OrderRepoMock))

	p := model.Product{ID: "p1", ShopID: "s1", Name: "Hoodie", Price: 4000}
	productRepo.On("FindVisibleByID", mock.Anything, "p1").Return(p, nil)
	shopRepo.On("FindByID", mock.Anything, "s1").Return(model.Shop{ID: "s1", Name: "Campus Wear"}, nil)

	existing := model.CartLine{ID: "line-1", UserID: "u1", ProductID: "p1", Size: "M", Quantity: 1}
	cartRepo.On("FindByUserProductSize", mock.Anything, "u1", "p1", "M").Return(existing, nil)
	cartRepo.On("UpdateQuantity", mock.Anything, "line-1", int64(3)).Return(nil)
	cartRepo.On("ListByUser", mock.Anything, "u1").Return([]model.CartLine{{ID: "line-1", Price: 4000, Quantity: 3}}, nil)

	out, err := uc.AddToCart(ctx, "u1", usecase.AddCartInput{ProductID: "p1", Quantity: 2, Size: "M"})
	assert.NoError(t, err)
	assert.Equal(t, int64(12000), out.Subtotal)

	// 新規行は作られない
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

// =====================
// 未削除注文の後始末
// =====================

func TestCartUsecase_GetCart_ReconcilesUnpurgedOrder(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCartUsecase(cartRepo, new(ProductRepoMock), new(ShopRepoMock), orderRepo)

	unpurged := []model.Order{
		{
			ID:        "o1",
			UserID:    "u1",
			CreatedAt: testNow,
			Items: []model.OrderItem{
				{ProductID: "p1", Size: "M"},
				{ProductID: "p2", Size: ""},
			},
		},
	}
	orderRepo.On("ListUnpurgedByUser", mock.Anything, "u1").Return(unpurged, nil)
	// 消すのは注文時点より前の行だけ。後から入れ直した行は対象外
	cartRepo.On("DeleteByUserProductSizeBefore", mock.Anything, "u1", "p1", "M", testNow).Return(nil)
	cartRepo.On("DeleteByUserProductSizeBefore", mock.Anything, "u1", "p2", "", testNow).Return(nil)
	orderRepo.On("MarkCartPurged", mock.Anything, "o1").Return(nil)
	cartRepo.On("ListByUser", mock.Anything, "u1").Return([]model.CartLine{}, nil)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCartUsecase_GetCart_NoUnpurgedOrders(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := newCartUsecase(cartRepo, new(ProductRepoMock), new(ShopRepoMock), orderRepo)

	orderRepo.On("ListUnpurgedByUser", mock.Anything, "u1").Return([]model.Order{}, nil)
	cartRepo.On("ListByUser", mock.Anything, "u1").Return([]model.CartLine{
		{ID: "line-1", Price: 1200, Quantity: 1},
	}, nil)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1200), out.Subtotal)
	assert.Equal(t, int64(1500), out.Shipping)
	assert.Equal(t, int64(2700), out.Total)
}
