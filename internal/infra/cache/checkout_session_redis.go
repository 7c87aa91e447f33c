package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"

	"github.com/redis/go-redis/v9"
)

// チェックアウトセッションの有効期限。
// 途中離脱したウィザードはこの時間で勝手に消える。
const checkoutSessionTTL = 30 * time.Minute

type CheckoutSessionRedisStore struct {
	rdb *redis.Client
}

// DI
func NewCheckoutSessionRedisStore(rdb *redis.Client) *CheckoutSessionRedisStore {
	return &CheckoutSessionRedisStore{rdb: rdb}
}

func checkoutKey(userID string) string {
	return "checkout:" + userID
}

func (s *CheckoutSessionRedisStore) Get(ctx context.Context, userID string) (model.CheckoutSession, error) {
	raw, err := s.rdb.Get(ctx, checkoutKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return model.CheckoutSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CheckoutSession{}, err
	}

	var session model.CheckoutSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return model.CheckoutSession{}, err
	}
	return session, nil
}

func (s *CheckoutSessionRedisStore) Save(ctx context.Context, session model.CheckoutSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, checkoutKey(session.UserID), raw, checkoutSessionTTL).Err()
}

func (s *CheckoutSessionRedisStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, checkoutKey(userID)).Err()
}
