package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/config"
)

// Client Redis 客户端封装
// 当前用于学年暦快照缓存与接口限流；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 学年暦快照缓存 ──

const snapshotPrefix = "calendar:snapshot:"

// SetSnapshot 缓存学年暦快照（JSON 序列化后的字节）
// 失效策略为整体替换，不做局部更新
func (c *Client) SetSnapshot(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, snapshotPrefix+key, payload, ttl).Err()
}

// GetSnapshot 读取缓存的快照；缓存未命中时返回 (nil, nil)
func (c *Client) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, snapshotPrefix+key).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// DeleteSnapshot 删除指定 key 的快照缓存（整体失效）
func (c *Client) DeleteSnapshot(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, snapshotPrefix+key).Err()
}

// ── 接口限流 ──

// CheckRateLimit 固定窗口限流：窗口内计数超过 limit 时返回 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
