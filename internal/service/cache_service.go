package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/eduguru-api/pkg/jobs"
)

type cacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CacheService provides typed read-through caching for master data and
// dashboard payloads. Invalidations run through a background queue so a
// slow or unavailable cache never delays a write request.
type CacheService struct {
	store        cacheStore
	queue        *jobs.Queue
	logger       *zap.Logger
	masterTTL    time.Duration
	dashboardTTL time.Duration
}

// NewCacheService constructs a CacheService and starts its invalidation
// workers. Call Stop on shutdown.
func NewCacheService(store cacheStore, logger *zap.Logger, masterTTL, dashboardTTL time.Duration) *CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CacheService{
		store:        store,
		logger:       logger,
		masterTTL:    masterTTL,
		dashboardTTL: dashboardTTL,
	}
	s.queue = jobs.NewQueue("cache_invalidation", s.handleInvalidation, jobs.Config{
		Workers:    2,
		BufferSize: 256,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
		Logger:     logger,
	})
	s.queue.Start(context.Background())
	return s
}

// Stop drains the invalidation queue.
func (s *CacheService) Stop() {
	s.queue.Stop()
}

func masterKey(userID, kind string) string {
	return fmt.Sprintf("eduguru:master:%s:%s", userID, kind)
}

func dashboardKey(userID string) string {
	return fmt.Sprintf("eduguru:dashboard:%s", userID)
}

// GetMaster loads a cached master-data payload into dest.
func (s *CacheService) GetMaster(ctx context.Context, userID, kind string, dest interface{}) error {
	return s.store.Get(ctx, masterKey(userID, kind), dest)
}

// SetMaster stores a master-data payload.
func (s *CacheService) SetMaster(ctx context.Context, userID, kind string, value interface{}) {
	if err := s.store.Set(ctx, masterKey(userID, kind), value, s.masterTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("kind", kind), zap.Error(err))
	}
}

// GetDashboard loads a cached dashboard payload into dest.
func (s *CacheService) GetDashboard(ctx context.Context, userID string, dest interface{}) error {
	return s.store.Get(ctx, dashboardKey(userID), dest)
}

// SetDashboard stores a dashboard payload.
func (s *CacheService) SetDashboard(ctx context.Context, userID string, value interface{}) {
	if err := s.store.Set(ctx, dashboardKey(userID), value, s.dashboardTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", "dashboard"), zap.Error(err))
	}
}

// InvalidateMaster queues deletion of the given master-data kinds along
// with the user's dashboard payload, which aggregates them.
func (s *CacheService) InvalidateMaster(userID string, kinds ...string) {
	keys := make([]string, 0, len(kinds)+1)
	for _, kind := range kinds {
		keys = append(keys, masterKey(userID, kind))
	}
	keys = append(keys, dashboardKey(userID))

	if err := s.queue.Enqueue(jobs.Task{
		ID:      fmt.Sprintf("invalidate_%s_%d", userID, time.Now().UnixNano()),
		Kind:    "cache_invalidate",
		Payload: keys,
	}); err != nil {
		s.logger.Warn("invalidation not queued", zap.String("user_id", userID), zap.Error(err))
	}
}

// InvalidateDashboard queues deletion of the user's dashboard payload.
func (s *CacheService) InvalidateDashboard(userID string) {
	s.InvalidateMaster(userID)
}

func (s *CacheService) handleInvalidation(ctx context.Context, task jobs.Task) error {
	keys, ok := task.Payload.([]string)
	if !ok {
		return fmt.Errorf("unexpected invalidation payload %T", task.Payload)
	}
	if len(keys) == 0 {
		return nil
	}
	return s.store.Delete(ctx, keys...)
}
