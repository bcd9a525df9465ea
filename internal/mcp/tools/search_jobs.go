package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careertrail/jobs-internships-mcp/internal/domain"
	"github.com/careertrail/jobs-internships-mcp/internal/domain/job"
	"github.com/careertrail/jobs-internships-mcp/internal/metrics"
	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool
type SearchJobsParams struct {
	Keywords       string `json:"keywords,omitempty" jsonschema:"Job search keywords, e.g. Software Engineer"`
	Location       string `json:"location,omitempty" jsonschema:"Location to search, defaults to India"`
	Country        string `json:"country,omitempty" jsonschema:"Country code such as in, us or gb, defaults to in"`
	Page           int    `json:"page,omitempty" jsonschema:"Page number for pagination, defaults to 1"`
	ResultsPerPage int    `json:"results_per_page,omitempty" jsonschema:"Results per page, defaults to 20, max 50"`
}

// SearchJobsResult is the response envelope for search_jobs
type SearchJobsResult struct {
	SearchTerms string       `json:"search_terms"`
	Location    string       `json:"location"`
	Country     string       `json:"country"`
	Page        int          `json:"page"`
	Jobs        []domain.Job `json:"jobs"`
	TotalFound  int          `json:"total_found"`
	Timestamp   string       `json:"timestamp"`
}

type searchJobsTool struct {
	svc     job.Service
	logger  *logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// WithSearchJobs registers the search_jobs tool
func WithSearchJobs(svc job.Service, logger *logging.Logger, m *metrics.Metrics) Option {
	return func(reg *registry) {
		handler := searchJobsTool{svc: svc, logger: logger, metrics: m, now: time.Now}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs",
			Description: "Search for job opportunities across all industries",
		}, handler.handle)
	}
}

func (t searchJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	t.metrics.ToolInvoked("search_jobs")

	if params == nil {
		params = &SearchJobsParams{}
	}

	location := orString(params.Location, defaultLocation)
	country := orString(params.Country, defaultCountry)
	page := orInt(params.Page, defaultPage)
	pageSize := orInt(params.ResultsPerPage, defaultPageSize)

	jobs := t.svc.Search(ctx, domain.SearchRequest{
		Keywords: params.Keywords,
		Location: location,
		Country:  country,
		Page:     page,
		PageSize: pageSize,
	})

	result := SearchJobsResult{
		SearchTerms: params.Keywords,
		Location:    location,
		Country:     country,
		Page:        page,
		Jobs:        jobs,
		TotalFound:  len(jobs),
		Timestamp:   t.now().Format(time.RFC3339),
	}

	t.logger.Debug("search_jobs completed", "keywords", params.Keywords, "total_found", result.TotalFound)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("search_jobs: marshal result: %w", err)
	}

	return textResult(string(payload)), result, nil
}
