package usecase

import (
	"context"
	"net/http"
	"strings"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

// 送料ルール：小計が10,000ナイラ超なら無料、以下なら一律1,500ナイラ。
const (
	FreeShippingThreshold int64 = 10000
	ShippingFlatFee       int64 = 1500
)

// ComputeSummary はカート明細から小計・送料・合計を計算する。
// total = subtotal + shipping が常に成り立つ。
func ComputeSummary(lines []model.CartLine) model.OrderSummary {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Price * l.Quantity
	}

	shipping := ShippingFlatFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return model.OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// CartUsecase は /cart の業務ロジック。
type CartUsecase struct {
	cartRepo    repo.CartLineRepository
	productRepo repo.ProductRepository
	shopRepo    repo.ShopRepository
	orderRepo   repo.OrderRepository
	idGen       IDGenerator
}

func NewCartUsecase(
	cartRepo repo.CartLineRepository,
	productRepo repo.ProductRepository,
	shopRepo repo.ShopRepository,
	orderRepo repo.OrderRepository,
	idGen IDGenerator,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		orderRepo:   orderRepo,
		idGen:       idGen,
	}
}

type CartResponse struct {
	Items    []model.CartLine `json:"items"`
	Subtotal int64            `json:"subtotal"`
	Shipping int64            `json:"shipping"`
	Total    int64            `json:"total"`
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
	Size      string
}

type UpdateCartLineInput struct {
	Quantity int64
}

// GetCart はカート取得。
// 先に「注文済みなのに消しきれていない明細」を後始末してから返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.reconcilePurgedOrders(ctx, userID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// AddToCart はカートに追加（同一商品・同一サイズは数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック（公開のみカートに入れられる）
	p, err := u.productRepo.FindVisibleByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	shopName := ""
	if s, err := u.shopRepo.FindByID(ctx, p.ShopID); err == nil {
		shopName = s.Name
	}

	// 既存行があれば数量加算、無ければスナップショットで新規作成
	existing, err := u.cartRepo.FindByUserProductSize(ctx, userID, in.ProductID, in.Size)
	if err == nil {
		if err := u.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+in.Quantity); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, userID)
	}
	if err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	line := model.CartLine{
		ID:        u.idGen.NewID(),
		UserID:    userID,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  in.Quantity,
		Size:      in.Size,
		ImageURL:  p.ImageURL,
		ShopID:    p.ShopID,
		ShopName:  shopName,
	}
	if _, err := u.cartRepo.Create(ctx, line); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// UpdateQuantity は数量変更。
// 1未満にする要求は何もしない（現在の状態をそのまま返す）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID string, lineID string, in UpdateCartLineInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if lineID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartRepo.IsOwnedByUser(ctx, lineID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	// 1未満はno-op
	if in.Quantity < 1 {
		return u.buildCartResponse(ctx, userID)
	}

	if err := u.cartRepo.UpdateQuantity(ctx, lineID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// RemoveLine は明細削除。
func (u *CartUsecase) RemoveLine(ctx context.Context, userID string, lineID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if lineID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartRepo.IsOwnedByUser(ctx, lineID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartRepo.DeleteByID(ctx, lineID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 注文は書けたがカート削除が途中で失敗した場合の後始末。
// 注文時点より前の行だけ消してからマーカーを立てる
// （注文後に入れ直した行は注文の対象ではないので残す）。
func (u *CartUsecase) reconcilePurgedOrders(ctx context.Context, userID string) error {
	orders, err := u.orderRepo.ListUnpurgedByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, o := range orders {
		for _, it := range o.Items {
			if err := u.cartRepo.DeleteByUserProductSizeBefore(ctx, userID, it.ProductID, it.Size, o.CreatedAt); err != nil {
				return err
			}
		}
		if err := u.orderRepo.MarkCartPurged(ctx, o.ID); err != nil {
			return err
		}
	}
	return nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, userID string) (CartResponse, error) {
	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	summary := ComputeSummary(lines)
	return CartResponse{
		Items:    lines,
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Total:    summary.Total,
	}, nil
}
