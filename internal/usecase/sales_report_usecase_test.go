package usecase_test

import (
	"context"
	"testing"
	"time"

	"campusmarket/internal/domain/model"
	"campusmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSalesReportUsecase_NoShops(t *testing.T) {
	ctx := context.Background()

	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewSalesReportUsecase(shopRepo, orderRepo)

	shopRepo.On("ListByVendor", mock.Anything, "v1").Return([]model.Shop{}, nil)

	out, err := uc.Report(ctx, "v1", usecase.SalesReportInput{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.TotalSales)
	assert.Equal(t, 0, len(out.Products))

	orderRepo.AssertNotCalled(t, "ListItemsByShops", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSalesReportUsecase_InvalidRange(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewSalesReportUsecase(new(ShopRepoMock), new(OrderRepoMock))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Report(ctx, "v1", usecase.SalesReportInput{From: &from, To: &to})
	assertErrContains(t, err, "invalid date range")
}

// 複数注文・複数商品の集計。注文数は明細数ではなく注文IDのユニーク数。
func TestSalesReportUsecase_Aggregation(t *testing.T) {
	ctx := context.Background()

	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewSalesReportUsecase(shopRepo, orderRepo)

	shopRepo.On("ListByVendor", mock.Anything, "v1").Return([]model.Shop{{ID: "s1"}, {ID: "s2"}}, nil)

	items := []model.OrderItem{
		{OrderID: "o1", ProductID: "p1", Name: "Hoodie", Price: 4000, Quantity: 2},
		{OrderID: "o1", ProductID: "p2", Name: "Mug", Price: 1500, Quantity: 1},
		{OrderID: "o2", ProductID: "p1", Name: "Hoodie", Price: 4000, Quantity: 1},
	}
	orderRepo.On("ListItemsByShops", mock.Anything, []string{"s1", "s2"}, (*time.Time)(nil), (*time.Time)(nil)).Return(items, nil)

	out, err := uc.Report(ctx, "v1", usecase.SalesReportInput{})
	assert.NoError(t, err)

	assert.Equal(t, int64(13500), out.TotalSales)
	assert.Equal(t, int64(2), out.TotalOrders)
	assert.Equal(t, int64(4), out.TotalItems)

	// 売上の大きい順
	assert.Equal(t, 2, len(out.Products))
	assert.Equal(t, "p1", out.Products[0].ProductID)
	assert.Equal(t, int64(12000), out.Products[0].Revenue)
	assert.Equal(t, int64(3), out.Products[0].Quantity)
	assert.Equal(t, "p2", out.Products[1].ProductID)
	assert.Equal(t, int64(1500), out.Products[1].Revenue)
}
