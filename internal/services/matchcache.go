package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

// rankedJobsKey is the single canonical cache key. One user, one feed, one
// ranked list at a time.
const rankedJobsKey = "jobs:ranked"

// MatchCacheManager serves the ranked job list cheaply on repeated requests.
// Reads are cache-aside; concurrent misses are coalesced so at most one
// scoring pass runs at a time and every concurrent caller shares its result.
type MatchCacheManager interface {
	GetRankedJobs(ctx context.Context) []models.RankedJob
	Invalidate(ctx context.Context)
}

type matchCacheManager struct {
	cache   CacheStore
	ranking RankingService
	ttl     time.Duration

	// The singleflight group is the only shared coordination state. It
	// clears its own in-flight handle when the computation finishes, so a
	// failed pass can never deadlock future requests. Single-instance only:
	// a multi-instance deployment would need this coordination moved into
	// the shared cache store.
	group singleflight.Group
}

func NewMatchCacheManager(cache CacheStore, ranking RankingService, ttl time.Duration) MatchCacheManager {
	return &matchCacheManager{
		cache:   cache,
		ranking: ranking,
		ttl:     ttl,
	}
}

// GetRankedJobs implements MatchCacheManager.
func (m *matchCacheManager) GetRankedJobs(ctx context.Context) []models.RankedJob {
	if raw, ok := m.cache.Get(ctx, rankedJobsKey); ok {
		var ranked []models.RankedJob
		if err := json.Unmarshal([]byte(raw), &ranked); err == nil {
			return ranked
		}
		log.Println("⚠️ Dropping undecodable cache entry")
		m.cache.Del(ctx, rankedJobsKey)
	}

	log.Println("🤖 Calculating AI match scores...")

	result, _, shared := m.group.Do(rankedJobsKey, func() (interface{}, error) {
		// Detached from the first caller's request context: once started,
		// a scoring pass always completes and is stored, even if that
		// caller goes away.
		computeCtx := context.WithoutCancel(ctx)
		ranked := m.ranking.Compute(computeCtx)

		if data, err := json.Marshal(ranked); err == nil {
			m.cache.Set(computeCtx, rankedJobsKey, string(data), m.ttl)
		}

		return ranked, nil
	})

	if shared {
		log.Println("⏳ Joined ongoing AI scoring pass")
	}

	return result.([]models.RankedJob)
}

// Invalidate implements MatchCacheManager. It only evicts the stored list; an
// in-flight computation is left to finish and store its result, which the next
// invalidation-triggering event will evict again. At worst one stale read
// slips through.
func (m *matchCacheManager) Invalidate(ctx context.Context) {
	m.cache.Del(ctx, rankedJobsKey)
	log.Println("🔄 Ranked jobs cache invalidated")
}
