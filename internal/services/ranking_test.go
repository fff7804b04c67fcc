package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

type countingScorer struct {
	scores map[string]MatchScore
	calls  int32
}

func (c *countingScorer) ScoreJobs(_ context.Context, _ string, _ []models.Job) map[string]MatchScore {
	atomic.AddInt32(&c.calls, 1)
	return c.scores
}

func TestComputeNoResumeShortcut(t *testing.T) {
	jobs := []models.Job{testJob("A"), testJob("B")}
	scorer := &countingScorer{}

	ranking := NewRankingService(
		&fakeJobRepo{jobs: jobs},
		&fakeUserRepo{err: errors.New("user not found")},
		scorer,
		"test@gmail.com",
		50,
	)

	ranked := ranking.Compute(context.Background())

	require.Len(t, ranked, 2)
	for _, entry := range ranked {
		assert.Equal(t, 0, entry.MatchScore)
		assert.Equal(t, noResumeReason, entry.MatchReason)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&scorer.calls), "no oracle call without a resume")
}

func TestComputeEmptyResumeShortcut(t *testing.T) {
	jobs := []models.Job{testJob("A")}
	scorer := &countingScorer{}

	ranking := NewRankingService(
		&fakeJobRepo{jobs: jobs},
		&fakeUserRepo{user: &models.User{Email: "test@gmail.com"}},
		scorer,
		"test@gmail.com",
		50,
	)

	ranked := ranking.Compute(context.Background())

	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].MatchScore)
	assert.Equal(t, int32(0), atomic.LoadInt32(&scorer.calls))
}

func TestComputeMergesScoresAndSortsDescending(t *testing.T) {
	jobA := testJob("A")
	jobB := testJob("B")
	jobC := testJob("C")

	scorer := &countingScorer{scores: map[string]MatchScore{
		jobA.ID.String(): {Score: 60, Reason: "ok"},
		jobB.ID.String(): {Score: 95, Reason: "great"},
		// jobC intentionally missing from the oracle response.
	}}

	ranking := NewRankingService(
		&fakeJobRepo{jobs: []models.Job{jobA, jobB, jobC}},
		&fakeUserRepo{user: &models.User{Email: "test@gmail.com", ResumeText: "Go developer"}},
		scorer,
		"test@gmail.com",
		50,
	)

	ranked := ranking.Compute(context.Background())

	require.Len(t, ranked, 3)
	assert.Equal(t, jobB.ID, ranked[0].ID)
	assert.Equal(t, 95, ranked[0].MatchScore)
	assert.Equal(t, jobA.ID, ranked[1].ID)
	assert.Equal(t, jobC.ID, ranked[2].ID)
	assert.Equal(t, 0, ranked[2].MatchScore)
	assert.Equal(t, noScoreReason, ranked[2].MatchReason)
	assert.Equal(t, int32(1), atomic.LoadInt32(&scorer.calls))
}

func TestComputeStableSortKeepsRetrievalOrderOnTies(t *testing.T) {
	jobA := testJob("First")
	jobB := testJob("Second")
	jobC := testJob("Third")

	scorer := &countingScorer{scores: map[string]MatchScore{
		jobA.ID.String(): {Score: 70, Reason: "tie"},
		jobB.ID.String(): {Score: 70, Reason: "tie"},
		jobC.ID.String(): {Score: 70, Reason: "tie"},
	}}

	ranking := NewRankingService(
		&fakeJobRepo{jobs: []models.Job{jobA, jobB, jobC}},
		&fakeUserRepo{user: &models.User{Email: "test@gmail.com", ResumeText: "resume"}},
		scorer,
		"test@gmail.com",
		50,
	)

	ranked := ranking.Compute(context.Background())

	require.Len(t, ranked, 3)
	assert.Equal(t, jobA.ID, ranked[0].ID)
	assert.Equal(t, jobB.ID, ranked[1].ID)
	assert.Equal(t, jobC.ID, ranked[2].ID)
}

func TestComputeJobLoadErrorReturnsEmptyList(t *testing.T) {
	ranking := NewRankingService(
		&fakeJobRepo{listErr: errors.New("db down")},
		&fakeUserRepo{user: &models.User{ResumeText: "resume"}},
		&countingScorer{},
		"test@gmail.com",
		50,
	)

	ranked := ranking.Compute(context.Background())

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestComputeHonorsPageSize(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.Job{testJob("A"), testJob("B"), testJob("C")}}

	ranking := NewRankingService(
		repo,
		&fakeUserRepo{err: errors.New("user not found")},
		&countingScorer{},
		"test@gmail.com",
		2,
	)

	assert.Len(t, ranking.Compute(context.Background()), 2)
}
