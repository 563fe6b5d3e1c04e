package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

func newCacheRepo(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return NewCacheRepository(client, zap.NewNop()), srv
}

func TestCacheSetGet(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	value := map[string]int{"students": 30}
	require.NoError(t, repo.Set(ctx, "dashboard:u1", value, time.Minute))

	var got map[string]int
	require.NoError(t, repo.Get(ctx, "dashboard:u1", &got))
	assert.Equal(t, 30, got["students"])
}

func TestCacheGetMiss(t *testing.T) {
	repo, _ := newCacheRepo(t)

	var got map[string]int
	err := repo.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
}

func TestCacheDeleteByPattern(t *testing.T) {
	repo, srv := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "master:u1:classes", []string{"X-A"}, time.Minute))
	require.NoError(t, repo.Set(ctx, "master:u1:students", []string{"Budi"}, time.Minute))
	require.NoError(t, repo.Set(ctx, "master:u2:classes", []string{"XI-B"}, time.Minute))

	require.NoError(t, repo.DeleteByPattern(ctx, "master:u1:*"))

	assert.False(t, srv.Exists("master:u1:classes"))
	assert.False(t, srv.Exists("master:u1:students"))
	assert.True(t, srv.Exists("master:u2:classes"))
}

func TestCacheNilClientDegrades(t *testing.T) {
	repo := NewCacheRepository(nil, zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, repo.Delete(ctx, "k"))
	assert.NoError(t, repo.DeleteByPattern(ctx, "k*"))

	var got string
	assert.ErrorIs(t, repo.Get(ctx, "k", &got), appErrors.ErrCacheMiss)
}
