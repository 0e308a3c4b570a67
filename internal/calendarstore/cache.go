package calendarstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/pkg/redis"
)

// CachedStore 在 Store 之上加一层 Redis 快照缓存。
// 缓存键为 (年度, 学年暦ID)，失效只做整体替换，绝不做局部修补；
// Redis 不可用时直接穿透到底层数据源（与限流中间件的降级策略一致）。
type CachedStore struct {
	inner  Store
	cache  *redis.Client // nil 时直接穿透
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStore 创建带缓存的学年暦数据源
func NewCachedStore(inner Store, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func snapshotKey(fiscalYear int, calendarID string) string {
	return fmt.Sprintf("%d:%s", fiscalYear, calendarID)
}

// FetchSnapshot 先查缓存，未命中时回源并回填。
// 缓存层故障只降级为回源，绝不让陈旧或部分数据流向生成逻辑。
func (s *CachedStore) FetchSnapshot(ctx context.Context, fiscalYear int, calendarID string) (*Snapshot, error) {
	key := snapshotKey(fiscalYear, calendarID)

	if s.cache != nil {
		payload, err := s.cache.GetSnapshot(ctx, key)
		if err != nil {
			s.logger.Warn("快照缓存读取失败，回源", zap.Error(err), zap.String("key", key))
		} else if payload != nil {
			var snap Snapshot
			if err := json.Unmarshal(payload, &snap); err == nil {
				return &snap, nil
			}
			s.logger.Warn("快照缓存内容损坏，回源", zap.String("key", key))
		}
	}

	snap, err := s.inner.FetchSnapshot(ctx, fiscalYear, calendarID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(snap); err == nil {
			if err := s.cache.SetSnapshot(ctx, key, payload, s.ttl); err != nil {
				s.logger.Warn("快照缓存写入失败", zap.Error(err), zap.String("key", key))
			}
		}
	}

	return snap, nil
}

// Invalidate 整体失效指定 (年度, 学年暦ID) 的快照缓存
func (s *CachedStore) Invalidate(ctx context.Context, fiscalYear int, calendarID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeleteSnapshot(ctx, snapshotKey(fiscalYear, calendarID))
}
