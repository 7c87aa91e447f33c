package usecase

import (
	"context"
	"net/http"
	"sort"
	"time"

	repo "campusmarket/internal/repository"
)

// SalesReportUsecase はベンダーの売上集計。
// 集計対象は注文に埋め込まれたラインスナップショット（後から商品が
// 変わっても過去の売上は動かない）。
type SalesReportUsecase struct {
	shopRepo  repo.ShopRepository
	orderRepo repo.OrderRepository
}

func NewSalesReportUsecase(shopRepo repo.ShopRepository, orderRepo repo.OrderRepository) *SalesReportUsecase {
	return &SalesReportUsecase{shopRepo: shopRepo, orderRepo: orderRepo}
}

type SalesReportInput struct {
	From *time.Time
	To   *time.Time
}

type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

type SalesReportOutput struct {
	TotalSales  int64          `json:"total_sales"`
	TotalOrders int64          `json:"total_orders"`
	TotalItems  int64          `json:"total_items"`
	Products    []ProductSales `json:"products"`
}

func (u *SalesReportUsecase) Report(ctx context.Context, vendorID string, in SalesReportInput) (SalesReportOutput, error) {
	if vendorID == "" {
		return SalesReportOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.From != nil && in.To != nil && in.From.After(*in.To) {
		return SalesReportOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date range")
	}

	shops, err := u.shopRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return SalesReportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(shops) == 0 {
		return SalesReportOutput{Products: []ProductSales{}}, nil
	}

	shopIDs := make([]string, 0, len(shops))
	for _, s := range shops {
		shopIDs = append(shopIDs, s.ID)
	}

	items, err := u.orderRepo.ListItemsByShops(ctx, shopIDs, in.From, in.To)
	if err != nil {
		return SalesReportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := SalesReportOutput{Products: []ProductSales{}}
	orderSeen := map[string]bool{}
	byProduct := map[string]*ProductSales{}

	for _, it := range items {
		revenue := it.Price * it.Quantity
		out.TotalSales += revenue
		out.TotalItems += it.Quantity

		if !orderSeen[it.OrderID] {
			orderSeen[it.OrderID] = true
			out.TotalOrders++
		}

		ps, ok := byProduct[it.ProductID]
		if !ok {
			ps = &ProductSales{ProductID: it.ProductID, Name: it.Name}
			byProduct[it.ProductID] = ps
		}
		ps.Quantity += it.Quantity
		ps.Revenue += revenue
	}

	for _, ps := range byProduct {
		out.Products = append(out.Products, *ps)
	}
	//売上の大きい順
	sort.Slice(out.Products, func(i, j int) bool {
		return out.Products[i].Revenue > out.Products[j].Revenue
	})

	return out, nil
}
