package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
	"campusmarket/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type PasswordVerifier interface {
	Verify(hash string, password string) error
}

type TokenIssuer interface {
	Issue(user *model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

// bcrypt（会員登録：Hash / ログイン：Verify）
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthUsecase は会員登録・ログイン・プロフィール。
// ログイン済みユーザーのレコードはキャッシュに置き、ログアウトで消す。
type AuthUsecase struct {
	userRepo  repo.UserRepository
	userCache repo.UserCache
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    TokenIssuer
	idGen     IDGenerator
	clock     Clock
}

func NewAuthUsecase(
	userRepo repo.UserRepository,
	userCache repo.UserCache,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		userCache: userCache,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	UserName string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// RegisterCustomer は一般ユーザーのサインアップ。
func (u *AuthUsecase) RegisterCustomer(ctx context.Context, in RegisterInput) (*model.User, error) {
	return u.register(ctx, in, model.RoleCustomer)
}

// RegisterVendor はベンダーのサインアップ。
// 作成時点では未承認（approved=false）で、承認されるまで出店できない。
func (u *AuthUsecase) RegisterVendor(ctx context.Context, in RegisterInput) (*model.User, error) {
	if strings.TrimSpace(in.Phone) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "phone is required")
	}
	return u.register(ctx, in, model.RoleVendor)
}

func (u *AuthUsecase) register(ctx context.Context, in RegisterInput, role model.Role) (*model.User, error) {
	email := strings.TrimSpace(in.Email)

	if email == "" || in.Password == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	if !validator.IsEmail(email) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return nil, NewHTTPError(http.StatusBadRequest, "password too short")
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "user_name is required")
	}

	// email重複チェック
	if existing, err := u.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, NewHTTPError(http.StatusConflict, "email already used")
	} else if err != nil && err != repo.ErrUserNotFound {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	now := u.clock.Now()
	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: hash,
		UserName:     strings.TrimSpace(in.UserName),
		Role:         role,
		Approved:     false,
		Phone:        strings.TrimSpace(in.Phone),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err == repo.ErrUserNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusForbidden, "account disabled")
	}

	if err := u.verifier.Verify(user.PasswordHash, in.Password); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// キャッシュは非権威。失敗してもログインは成立させる
	_ = u.userCache.Set(ctx, user)

	token, expiresAt, err := u.issuer.Issue(user, now)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout はキャッシュ上のユーザーレコードを消す。
func (u *AuthUsecase) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.userCache.Delete(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "cache error")
	}
	return nil
}

// GetProfile はキャッシュ優先でユーザーを返す。外れたらDBを読んで埋め直す。
func (u *AuthUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if cached, err := u.userCache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_ = u.userCache.Set(ctx, user)
	return user, nil
}

type UpdateProfileInput struct {
	UserName string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
}

// UpdateProfile はプロフィール更新。emailとroleはここでは変えられない。
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*model.User, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "user_name is required")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.UserName = strings.TrimSpace(in.UserName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Address = in.Address
	user.City = in.City
	user.State = in.State
	user.ZipCode = in.ZipCode

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_ = u.userCache.Set(ctx, user)
	return user, nil
}
