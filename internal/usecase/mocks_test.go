package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"campusmarket/internal/domain/model"
	"campusmarket/internal/payment"
	repo "campusmarket/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUser(ctx context.Context, userID string) ([]model.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, lineID string) (model.CartLine, error) {
	args := m.Called(ctx, lineID)
	l, _ := args.Get(0).(model.CartLine)
	return l, args.Error(1)
}

func (m *CartRepoMock) FindByUserProductSize(ctx context.Context, userID, productID, size string) (model.CartLine, error) {
	args := m.Called(ctx, userID, productID, size)
	l, _ := args.Get(0).(model.CartLine)
	return l, args.Error(1)
}

func (m *CartRepoMock) Create(ctx context.Context, line model.CartLine) (model.CartLine, error) {
	args := m.Called(ctx, line)
	l, _ := args.Get(0).(model.CartLine)
	return l, args.Error(1)
}

func (m *CartRepoMock) UpdateQuantity(ctx context.Context, lineID string, qty int64) error {
	args := m.Called(ctx, lineID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, lineID string) error {
	args := m.Called(ctx, lineID)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByUserProductSizeBefore(ctx context.Context, userID, productID, size string, before time.Time) error {
	args := m.Called(ctx, userID, productID, size, before)
	return args.Error(0)
}

func (m *CartRepoMock) IsOwnedByUser(ctx context.Context, lineID string, userID string) (bool, error) {
	args := m.Called(ctx, lineID, userID)
	return args.Bool(0), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListVisible(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListVisibleByShop(ctx context.Context, shopID string) ([]model.Product, error) {
	args := m.Called(ctx, shopID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListPopular(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) SearchByNamePrefix(ctx context.Context, prefix string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, prefix, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindVisibleByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByVendor(ctx context.Context, vendorID string) ([]model.Product, error) {
	args := m.Called(ctx, vendorID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *ProductRepoMock) SetPopular(ctx context.Context, productID string, popular bool) error {
	args := m.Called(ctx, productID, popular)
	return args.Error(0)
}

func (m *ProductRepoMock) AddSalesCount(ctx context.Context, productID string, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) CountPopular(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ShopRepoMock struct{ mock.Mock }

func (m *ShopRepoMock) ListVisible(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) ListVisibleByCategory(ctx context.Context, category string) ([]model.Shop, error) {
	args := m.Called(ctx, category)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) FindByID(ctx context.Context, shopID string) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindVisibleByID(ctx context.Context, shopID string) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) ListByVendor(ctx context.Context, vendorID string) ([]model.Shop, error) {
	args := m.Called(ctx, vendorID)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) ListPendingApproval(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) Create(ctx context.Context, s model.Shop) (model.Shop, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Shop)
	return created, args.Error(1)
}

func (m *ShopRepoMock) Update(ctx context.Context, s model.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *ShopRepoMock) SetApproval(ctx context.Context, shopID string, approved bool, at time.Time) error {
	args := m.Called(ctx, shopID, approved, at)
	return args.Error(0)
}

func (m *ShopRepoMock) SoftDelete(ctx context.Context, shopID string) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}

func (m *ShopRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShopRepoMock) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) MarkCartPurged(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) ListUnpurgedByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) ListItemsByShops(ctx context.Context, shopIDs []string, from, to *time.Time) ([]model.OrderItem, error) {
	args := m.Called(ctx, shopIDs, from, to)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) SetApproval(ctx context.Context, userID string, approved bool) error {
	args := m.Called(ctx, userID, approved)
	return args.Error(0)
}

func (m *UserRepoMock) ListPendingVendors(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepoMock) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type UserCacheMock struct{ mock.Mock }

func (m *UserCacheMock) Get(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserCacheMock) Set(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserCacheMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type SessionStoreMock struct{ mock.Mock }

func (m *SessionStoreMock) Get(ctx context.Context, userID string) (model.CheckoutSession, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(model.CheckoutSession)
	return s, args.Error(1)
}

func (m *SessionStoreMock) Save(ctx context.Context, session model.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionStoreMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) InlineConfig(txRef string, amount int64, customer payment.Customer) (payment.InlineConfig, error) {
	args := m.Called(txRef, amount, customer)
	cfg, _ := args.Get(0).(payment.InlineConfig)
	return cfg, args.Error(1)
}

func (m *GatewayMock) VerifyTransaction(ctx context.Context, txRef string) (payment.Result, error) {
	args := m.Called(ctx, txRef)
	r, _ := args.Get(0).(payment.Result)
	return r, args.Error(1)
}

type SavedRepoMock struct{ mock.Mock }

func (m *SavedRepoMock) ListByUser(ctx context.Context, userID string) ([]model.SavedItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.SavedItem)
	return items, args.Error(1)
}

func (m *SavedRepoMock) FindByUserAndProduct(ctx context.Context, userID, productID string) (model.SavedItem, error) {
	args := m.Called(ctx, userID, productID)
	item, _ := args.Get(0).(model.SavedItem)
	return item, args.Error(1)
}

func (m *SavedRepoMock) Create(ctx context.Context, item model.SavedItem) (model.SavedItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.SavedItem)
	return created, args.Error(1)
}

func (m *SavedRepoMock) DeleteByID(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *SavedRepoMock) IsOwnedByUser(ctx context.Context, itemID string, userID string) (bool, error) {
	args := m.Called(ctx, itemID, userID)
	return args.Bool(0), args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, review model.Review) (model.Review, error) {
	args := m.Called(ctx, review)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Review, error) {
	args := m.Called(ctx, limit)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) SetFeatured(ctx context.Context, reviewID string, featured bool) error {
	args := m.Called(ctx, reviewID, featured)
	return args.Error(0)
}

// =====================
// 差し替え部品
// =====================

// 連番で払い出すIDGenerator
type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("expected error containing %q, got %q", wantSubstr, err.Error())
	}
}
