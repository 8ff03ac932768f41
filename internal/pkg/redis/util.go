package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNotInitialized = errors.New("redis 客户端未初始化")

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", errNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Del(ctx, key).Err()
}

// SAdd 向集合添加成员
func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

// SRem 从集合移除成员
func SRem(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.SRem(ctx, key, members...).Err()
}

// SIsMember 判断成员是否在集合中
func SIsMember(ctx context.Context, key string, member interface{}) (bool, error) {
	if Rdb == nil {
		return false, errNotInitialized
	}
	return Rdb.SIsMember(ctx, key, member).Result()
}

// SMembers 获取集合全部成员
func SMembers(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, errNotInitialized
	}
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// HSet 设置哈希字段
func HSet(ctx context.Context, key string, field string, value interface{}) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.HSet(ctx, key, field, value).Err()
}

// HGetAll 获取整个哈希
func HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if Rdb == nil {
		return nil, errNotInitialized
	}
	return Rdb.HGetAll(ctx, key).Result()
}

// HDel 删除哈希字段
func HDel(ctx context.Context, key string, fields ...string) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.HDel(ctx, key, fields...).Err()
}

// Publish 向频道发布消息
func Publish(ctx context.Context, channel string, payload interface{}) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe 订阅频道
func Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error) {
	if Rdb == nil {
		return nil, errNotInitialized
	}
	return Rdb.Subscribe(ctx, channels...), nil
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
