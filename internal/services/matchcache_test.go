package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

func rankedFixture() []models.RankedJob {
	return []models.RankedJob{
		{Job: testJob("Go Developer"), MatchScore: 90, MatchReason: "Great fit"},
		{Job: testJob("QA Engineer"), MatchScore: 45, MatchReason: "Partial fit"},
	}
}

func TestGetRankedJobsColdCacheComputesAndStores(t *testing.T) {
	cache := newMemoryCache()
	ranking := &blockingRanking{result: rankedFixture()}
	manager := NewMatchCacheManager(cache, ranking, time.Hour)

	ranked := manager.GetRankedJobs(context.Background())

	require.Len(t, ranked, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ranking.computes))

	stored, ok := cache.Get(context.Background(), rankedJobsKey)
	require.True(t, ok, "result should be stored in the cache")
	assert.Equal(t, time.Hour, cache.lastTTL)

	var cached []models.RankedJob
	require.NoError(t, json.Unmarshal([]byte(stored), &cached))
	assert.Equal(t, ranked[0].MatchScore, cached[0].MatchScore)
}

func TestGetRankedJobsCacheHitSkipsCompute(t *testing.T) {
	cache := newMemoryCache()
	fixture := rankedFixture()
	data, err := json.Marshal(fixture)
	require.NoError(t, err)
	cache.Set(context.Background(), rankedJobsKey, string(data), time.Hour)

	ranking := &blockingRanking{result: nil}
	manager := NewMatchCacheManager(cache, ranking, time.Hour)

	ranked := manager.GetRankedJobs(context.Background())

	require.Len(t, ranked, 2)
	assert.Equal(t, fixture[0].Title, ranked[0].Title)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ranking.computes))
}

func TestGetRankedJobsSingleflight(t *testing.T) {
	const callers = 16

	cache := newMemoryCache()
	ranking := &blockingRanking{
		release: make(chan struct{}),
		result:  rankedFixture(),
	}
	manager := NewMatchCacheManager(cache, ranking, time.Hour)

	results := make([][]models.RankedJob, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = manager.GetRankedJobs(context.Background())
		}(i)
	}

	// Let every caller reach the miss path before the computation finishes.
	time.Sleep(100 * time.Millisecond)
	close(ranking.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&ranking.computes),
		"concurrent misses must coalesce into one scoring pass")

	first, err := json.Marshal(results[0])
	require.NoError(t, err)
	for i := 1; i < callers; i++ {
		other, err := json.Marshal(results[i])
		require.NoError(t, err)
		assert.Equal(t, string(first), string(other), "caller %d saw a different list", i)
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	cache := newMemoryCache()
	ranking := &blockingRanking{result: rankedFixture()}
	manager := NewMatchCacheManager(cache, ranking, time.Hour)

	ctx := context.Background()
	manager.GetRankedJobs(ctx)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ranking.computes))

	// A second read inside the TTL is served from the cache.
	manager.GetRankedJobs(ctx)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ranking.computes))

	manager.Invalidate(ctx)

	manager.GetRankedJobs(ctx)
	assert.Equal(t, int32(2), atomic.LoadInt32(&ranking.computes),
		"invalidation must force a recompute even within the TTL")
}

func TestGetRankedJobsDropsCorruptCacheEntry(t *testing.T) {
	cache := newMemoryCache()
	cache.Set(context.Background(), rankedJobsKey, "{not json", time.Hour)

	ranking := &blockingRanking{result: rankedFixture()}
	manager := NewMatchCacheManager(cache, ranking, time.Hour)

	ranked := manager.GetRankedJobs(context.Background())

	require.Len(t, ranked, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ranking.computes))
}

func TestDisabledCacheStoreIsSilentNoop(t *testing.T) {
	store := NewCacheStore("")

	ctx := context.Background()
	store.Set(ctx, "key", "value", time.Minute)
	_, ok := store.Get(ctx, "key")
	assert.False(t, ok, "disabled store must behave as a permanent miss")
	store.Del(ctx, "key")
}

func TestInvalidCacheURLDegradesToDisabled(t *testing.T) {
	store := NewCacheStore("not-a-redis-url")

	_, ok := store.Get(context.Background(), "key")
	assert.False(t, ok)
}

func TestGetRankedJobsWithDisabledCacheStillServes(t *testing.T) {
	ranking := &blockingRanking{result: rankedFixture()}
	manager := NewMatchCacheManager(NewCacheStore(""), ranking, time.Hour)

	ctx := context.Background()
	require.Len(t, manager.GetRankedJobs(ctx), 2)
	require.Len(t, manager.GetRankedJobs(ctx), 2)

	// Every read is a miss without a cache, and that is fine.
	assert.Equal(t, int32(2), atomic.LoadInt32(&ranking.computes))
}
