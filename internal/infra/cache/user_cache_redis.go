package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campusmarket/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const userCacheTTL = 24 * time.Hour

// 「現在のユーザー」レコードのキャッシュ。
// ログインで入れてログアウトで消す。外れたらDBを読む（キャッシュは非権威）。
type UserRedisCache struct {
	rdb *redis.Client
}

// DI
func NewUserRedisCache(rdb *redis.Client) *UserRedisCache {
	return &UserRedisCache{rdb: rdb}
}

func userKey(userID string) string {
	return "user:" + userID
}

// キャッシュミスは (nil, nil)。エラーと区別する。
func (c *UserRedisCache) Get(ctx context.Context, userID string) (*model.User, error) {
	raw, err := c.rdb.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserRedisCache) Set(ctx context.Context, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(user.ID), raw, userCacheTTL).Err()
}

func (c *UserRedisCache) Delete(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, userKey(userID)).Err()
}
