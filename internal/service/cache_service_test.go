package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/repository"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

func newTestCacheService(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := repository.NewCacheRepository(client, nil)
	svc := NewCacheService(store, nil, time.Minute, time.Minute)
	t.Cleanup(svc.Stop)
	return svc, mr
}

func TestMasterCacheRoundTrip(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	grade := 10
	classes := []models.Class{{ID: "CX1AB", Name: "X IPA 1", Grade: &grade, UserID: "u1"}}
	svc.SetMaster(ctx, "u1", "classes", classes)

	var got []models.Class
	require.NoError(t, svc.GetMaster(ctx, "u1", "classes", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "CX1AB", got[0].ID)
	require.NotNil(t, got[0].Grade)
	assert.Equal(t, 10, *got[0].Grade)
}

func TestMasterCacheMiss(t *testing.T) {
	svc, _ := newTestCacheService(t)

	var got []models.Class
	err := svc.GetMaster(context.Background(), "u1", "classes", &got)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestInvalidateMasterDropsKindAndDashboard(t *testing.T) {
	svc, mr := newTestCacheService(t)
	ctx := context.Background()

	svc.SetMaster(ctx, "u1", "classes", []string{"a"})
	svc.SetMaster(ctx, "u1", "students", []string{"b"})
	svc.SetDashboard(ctx, "u1", models.DashboardStats{ClassCount: 1})

	svc.InvalidateMaster("u1", "classes")

	assert.Eventually(t, func() bool {
		return !mr.Exists("eduguru:master:u1:classes") && !mr.Exists("eduguru:dashboard:u1")
	}, 2*time.Second, 10*time.Millisecond)

	assert.True(t, mr.Exists("eduguru:master:u1:students"), "other kinds stay cached")
}

func TestDashboardCacheRoundTrip(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	stats := models.DashboardStats{StudentCount: 32, ClassCount: 2, JournalCount: 8, TeachingHours: 16}
	svc.SetDashboard(ctx, "u1", stats)

	var got models.DashboardStats
	require.NoError(t, svc.GetDashboard(ctx, "u1", &got))
	assert.Equal(t, stats.StudentCount, got.StudentCount)
	assert.Equal(t, stats.TeachingHours, got.TeachingHours)
}
