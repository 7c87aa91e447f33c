package repository

import (
	"context"
	"errors"

	"campusmarket/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID string) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// プロフィール更新・最終ログイン更新など
	Update(ctx context.Context, user *model.User) error
	//ベンダー承認フラグの更新（管理者のみが呼ぶ）
	SetApproval(ctx context.Context, userID string, approved bool) error
	//未承認ベンダーの一覧
	ListPendingVendors(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}
