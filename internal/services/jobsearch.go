package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

// JobSearchProvider fetches job listings for a search term from an external
// board. An empty result means "no new jobs", never an error: provider
// failures must not break ingestion or chat.
type JobSearchProvider interface {
	Search(ctx context.Context, term string) []models.Job
}

type adzunaProvider struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

func NewAdzunaProvider(appID, appKey, baseURL string) JobSearchProvider {
	return &adzunaProvider{
		appID:   strings.TrimSpace(appID),
		appKey:  strings.TrimSpace(appKey),
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string    `json:"description"`
	ContractTime string    `json:"contract_time"`
	SalaryMin    float64   `json:"salary_min"`
	RedirectURL  string    `json:"redirect_url"`
	Created      time.Time `json:"created"`
}

var (
	htmlTagRegex    = regexp.MustCompile(`</?[^>]+(>|$)`)
	internshipRegex = regexp.MustCompile(`(?i)\b(intern|interns|internship|trainee)\b`)
)

// Search implements JobSearchProvider.
func (p *adzunaProvider) Search(ctx context.Context, term string) []models.Job {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		log.Printf("❌ Adzuna error: invalid base URL: %v", err)
		return nil
	}

	params := url.Values{}
	params.Set("app_id", p.appID)
	params.Set("app_key", p.appKey)
	params.Set("what", term)
	params.Set("results_per_page", "50")
	params.Set("content-type", "application/json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		log.Printf("❌ Adzuna error: %v", err)
		return nil
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("❌ Adzuna error: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("❌ Adzuna error: http %d", resp.StatusCode)
		return nil
	}

	var data adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("❌ Adzuna error: %v", err)
		return nil
	}

	if len(data.Results) == 0 {
		log.Println("⚠️ Job search returned 0 jobs")
		return nil
	}

	jobs := make([]models.Job, 0, len(data.Results))
	for _, result := range data.Results {
		title := stripHTML(result.Title)
		description := stripHTML(result.Description)

		postedAt := result.Created
		if postedAt.IsZero() {
			postedAt = time.Now()
		}

		externalID := result.ID
		if externalID == "" {
			externalID = result.RedirectURL
		}

		jobs = append(jobs, models.Job{
			ID:          uuid.New(),
			ExternalID:  externalID,
			Title:       title,
			Company:     result.Company.DisplayName,
			Location:    result.Location.DisplayName,
			Description: description,
			Type:        detectEmploymentType(title, description, result.ContractTime),
			Salary:      formatSalary(result.SalaryMin),
			JobURL:      result.RedirectURL,
			PostedAt:    postedAt,
		})
	}

	log.Printf("✅ Fetched %d jobs for %q", len(jobs), term)
	return jobs
}

// detectEmploymentType scans the cleaned title and description. Internship
// markers win over the board's contract_time field because boards routinely
// tag internships as full_time.
func detectEmploymentType(title, description, contractTime string) models.EmploymentType {
	text := strings.ToLower(title + " " + description)

	if internshipRegex.MatchString(text) {
		return models.TypeInternship
	}

	switch contractTime {
	case "contract":
		return models.TypeContract
	case "part_time":
		return models.TypePartTime
	}

	return models.TypeFullTime
}

func stripHTML(text string) string {
	return htmlTagRegex.ReplaceAllString(text, "")
}

func formatSalary(salaryMin float64) string {
	if salaryMin <= 0 {
		return "Not disclosed"
	}
	return fmt.Sprintf("₹%.0f", salaryMin)
}
