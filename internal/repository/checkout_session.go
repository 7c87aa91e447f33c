package repository

import (
	"context"

	"campusmarket/internal/domain/model"
)

// チェックアウト進行状態の一時保存（Redis実装、TTLあり）。
// ユーザーにつきセッションは1つ。
type CheckoutSessionStore interface {
	// 無ければErrNotFound
	Get(ctx context.Context, userID string) (model.CheckoutSession, error)
	Save(ctx context.Context, session model.CheckoutSession) error
	Delete(ctx context.Context, userID string) error
}

// 「現在のアプリケーションユーザー」のキャッシュ。
// ログインで入れ、ログアウトで消す。リロード時のDB読みを省く。
type UserCache interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	Set(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID string) error
}
