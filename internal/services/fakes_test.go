package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

// Shared test doubles for the services package.

type stubGemini struct {
	mu         sync.Mutex
	response   string
	err        error
	delay      time.Duration
	calls      int32
	lastPrompt string
}

func (s *stubGemini) GenerateText(ctx context.Context, _, prompt string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	s.mu.Lock()
	s.lastPrompt = prompt
	response, err, delay := s.response, s.err, s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	return response, nil
}

func (s *stubGemini) callCount() int {
	return int(atomic.LoadInt32(&s.calls))
}

type fakeJobRepo struct {
	mu              sync.Mutex
	jobs            []models.Job
	listErr         error
	insertErr       error
	insertedBatches [][]models.Job
}

func (f *fakeJobRepo) ListRecent(limit int) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.jobs) > limit {
		return f.jobs[:limit], nil
	}
	return f.jobs, nil
}

func (f *fakeJobRepo) InsertSkipDuplicates(jobs []models.Job) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.insertedBatches = append(f.insertedBatches, jobs)

	seen := make(map[string]bool, len(f.jobs))
	for _, job := range f.jobs {
		seen[job.ExternalID] = true
	}

	var inserted int64
	for _, job := range jobs {
		if seen[job.ExternalID] {
			continue
		}
		seen[job.ExternalID] = true
		f.jobs = append(f.jobs, job)
		inserted++
	}
	return inserted, nil
}

func (f *fakeJobRepo) DeleteAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = nil
	return nil
}

type fakeUserRepo struct {
	user *models.User
	err  error
}

func (f *fakeUserRepo) FindByEmail(_ string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserRepo) UpsertResume(email, password, resumeText string) (*models.User, error) {
	if f.user == nil {
		f.user = &models.User{ID: uuid.New(), Email: email, Password: password}
	}
	f.user.ResumeText = resumeText
	f.user.ResumeVersion++
	return f.user, nil
}

type fakeAppRepo struct {
	apps []models.Application
	err  error
}

func (f *fakeAppRepo) Upsert(app *models.Application) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.apps {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			f.apps[i].Status = app.Status
			return nil
		}
	}
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeAppRepo) ListRecent(limit int) ([]models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.apps) > limit {
		return f.apps[:limit], nil
	}
	return f.apps, nil
}

func (f *fakeAppRepo) DeleteAll() error {
	f.apps = nil
	return nil
}

type fakeProvider struct {
	mu       sync.Mutex
	jobs     []models.Job
	lastTerm string
}

func (f *fakeProvider) Search(_ context.Context, term string) []models.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTerm = term
	return f.jobs
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
	lastTTL time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *memoryCache) Set(_ context.Context, key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.lastTTL = ttl
}

func (m *memoryCache) Del(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

type fakeMatchCache struct {
	invalidations int32
}

func (f *fakeMatchCache) GetRankedJobs(_ context.Context) []models.RankedJob {
	return nil
}

func (f *fakeMatchCache) Invalidate(_ context.Context) {
	atomic.AddInt32(&f.invalidations, 1)
}

type blockingRanking struct {
	release  chan struct{}
	computes int32
	result   []models.RankedJob
}

func (b *blockingRanking) Compute(_ context.Context) []models.RankedJob {
	atomic.AddInt32(&b.computes, 1)
	if b.release != nil {
		<-b.release
	}
	return b.result
}

func testJob(title string) models.Job {
	return models.Job{
		ID:         uuid.New(),
		ExternalID: "ext-" + title,
		Title:      title,
		Company:    "Acme",
		Location:   "Remote",
		Type:       models.TypeFullTime,
		PostedAt:   time.Now(),
	}
}
