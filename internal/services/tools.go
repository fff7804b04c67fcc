package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Viren021/ai-job-tracker/internal/models"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
)

const (
	ActionRefreshFeed  = "REFRESH_FEED"
	ActionUpdateFilter = "UPDATE_FILTER"
)

const historyLimit = 5

// ToolExecutor runs one structured command and produces the reply plus the
// optional action descriptor for the presentation layer. All three tools are
// idempotent at the storage layer.
type ToolExecutor struct {
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
	provider JobSearchProvider
	cache    MatchCacheManager
}

func NewToolExecutor(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	provider JobSearchProvider,
	cache MatchCacheManager,
) *ToolExecutor {
	return &ToolExecutor{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		provider: provider,
		cache:    cache,
	}
}

// Execute dispatches a Command to its tool.
func (e *ToolExecutor) Execute(ctx context.Context, cmd Command) models.ChatResponse {
	switch cmd.Kind {
	case CommandSearch:
		return e.searchAndIngest(ctx, cmd.Term)
	case CommandHistory:
		return e.readHistory()
	case CommandSetFilter:
		return e.setFilter(cmd.Filter, cmd.Value)
	default:
		return models.ChatResponse{Reply: "I couldn't process that tool command."}
	}
}

// searchAndIngest fetches listings for the term, inserts them skipping
// duplicates, and invalidates the ranked-jobs cache when anything new landed.
func (e *ToolExecutor) searchAndIngest(ctx context.Context, term string) models.ChatResponse {
	log.Printf("🤖 Agent fetching: %s", term)

	found := e.provider.Search(ctx, term)
	if len(found) > 0 {
		inserted, err := e.jobRepo.InsertSkipDuplicates(found)
		if err != nil {
			log.Printf("❌ Failed to ingest jobs: %v", err)
		} else if inserted > 0 {
			e.cache.Invalidate(ctx)
		}
	}

	return models.ChatResponse{
		Reply:  fmt.Sprintf("I've updated the feed with the latest %s jobs!", term),
		Action: &models.ChatAction{Type: ActionRefreshFeed},
	}
}

func (e *ToolExecutor) readHistory() models.ChatResponse {
	apps, err := e.appRepo.ListRecent(historyLimit)
	if err != nil {
		log.Printf("❌ Failed to read applications: %v", err)
		return models.ChatResponse{Reply: "No applications found."}
	}

	if len(apps) == 0 {
		return models.ChatResponse{Reply: "No applications found."}
	}

	titles := make([]string, 0, len(apps))
	for _, app := range apps {
		titles = append(titles, app.JobTitle)
	}

	return models.ChatResponse{
		Reply: fmt.Sprintf("You have applied to: %s", strings.Join(titles, ", ")),
	}
}

// setFilter touches no storage; the filter lives client-side.
func (e *ToolExecutor) setFilter(filter, value string) models.ChatResponse {
	return models.ChatResponse{
		Reply: fmt.Sprintf("Filtering for %s...", value),
		Action: &models.ChatAction{
			Type:   ActionUpdateFilter,
			Filter: filter,
			Value:  value,
		},
	}
}
