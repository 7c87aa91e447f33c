package repository

import (
	"context"
	"errors"
	"strings"

	"campusmarket/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page     int
	Limit    int
	Category string
	Sort     string
}

// 商品の永続化（保存・取得）だけを約束。
// 「公開」の条件（承認済みかつactiveなショップに属すること）は
// 実装側がVisibleProductsスコープ一箇所で決める。
type ProductRepository interface {
	ListVisible(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	ListVisibleByShop(ctx context.Context, shopID string) ([]model.Product, error)
	ListPopular(ctx context.Context, limit int) ([]model.Product, error)
	//商品名の前方一致検索（部分一致ではない）
	SearchByNamePrefix(ctx context.Context, prefix string, limit int) ([]model.Product, error)

	FindByID(ctx context.Context, productID string) (model.Product, error)
	FindVisibleByID(ctx context.Context, productID string) (model.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, productID string) error
	SetPopular(ctx context.Context, productID string, popular bool) error
	AddSalesCount(ctx context.Context, productID string, qty int64) error

	Count(ctx context.Context) (int64, error)
	CountPopular(ctx context.Context) (int64, error)
}

// PrefixPatternは前方一致用のLIKEパターンを作る。
// LIKEのメタ文字はエスケープする（"100%" が全件に化けないように）。
func PrefixPattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q) + "%"
}
