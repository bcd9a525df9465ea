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

// SearchRemoteJobsParams defines the arguments for the search_remote_jobs tool
type SearchRemoteJobsParams struct {
	Keywords       string `json:"keywords,omitempty" jsonschema:"Job search keywords"`
	Country        string `json:"country,omitempty" jsonschema:"Country code to search within, defaults to in"`
	Page           int    `json:"page,omitempty" jsonschema:"Page number for pagination, defaults to 1"`
	ResultsPerPage int    `json:"results_per_page,omitempty" jsonschema:"Results per page, defaults to 20"`
}

// SearchRemoteJobsResult is the response envelope for search_remote_jobs
type SearchRemoteJobsResult struct {
	SearchTerms string       `json:"search_terms"`
	Country     string       `json:"country"`
	Page        int          `json:"page"`
	RemoteJobs  []domain.Job `json:"remote_jobs"`
	TotalFound  int          `json:"total_found"`
	Timestamp   string       `json:"timestamp"`
}

type searchRemoteJobsTool struct {
	svc     job.Service
	logger  *logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// WithSearchRemoteJobs registers the search_remote_jobs tool
func WithSearchRemoteJobs(svc job.Service, logger *logging.Logger, m *metrics.Metrics) Option {
	return func(reg *registry) {
		handler := searchRemoteJobsTool{svc: svc, logger: logger, metrics: m, now: time.Now}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_remote_jobs",
			Description: "Search specifically for remote job opportunities",
		}, handler.handle)
	}
}

func (t searchRemoteJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchRemoteJobsParams) (*sdkmcp.CallToolResult, any, error) {
	t.metrics.ToolInvoked("search_remote_jobs")

	if params == nil {
		params = &SearchRemoteJobsParams{}
	}

	country := orString(params.Country, defaultCountry)
	page := orInt(params.Page, defaultPage)
	pageSize := orInt(params.ResultsPerPage, defaultPageSize)

	jobs := t.svc.SearchRemote(ctx, domain.RemoteRequest{
		Keywords: params.Keywords,
		Country:  country,
		Page:     page,
		PageSize: pageSize,
	})

	result := SearchRemoteJobsResult{
		SearchTerms: params.Keywords,
		Country:     country,
		Page:        page,
		RemoteJobs:  jobs,
		TotalFound:  len(jobs),
		Timestamp:   t.now().Format(time.RFC3339),
	}

	t.logger.Debug("search_remote_jobs completed", "keywords", params.Keywords, "total_found", result.TotalFound)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("search_remote_jobs: marshal result: %w", err)
	}

	return textResult(string(payload)), result, nil
}
