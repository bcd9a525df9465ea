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

// SearchCompanyJobsParams defines the arguments for the search_company_jobs tool
type SearchCompanyJobsParams struct {
	CompanyName    string `json:"company_name" jsonschema:"Name of the company to search"`
	JobDescription string `json:"job_description,omitempty" jsonschema:"Job description or title, echoed back in the response"`
	Location       string `json:"location,omitempty" jsonschema:"Location to search, defaults to India"`
	Country        string `json:"country,omitempty" jsonschema:"Country code such as in, us or gb, defaults to in"`
	Page           int    `json:"page,omitempty" jsonschema:"Page number for pagination, defaults to 1"`
	ResultsPerPage int    `json:"results_per_page,omitempty" jsonschema:"Results per page, defaults to 20"`
}

// SearchCompanyJobsResult is the response envelope for search_company_jobs
type SearchCompanyJobsResult struct {
	Company        string       `json:"company"`
	JobDescription string       `json:"job_description"`
	Location       string       `json:"location"`
	Country        string       `json:"country"`
	Page           int          `json:"page"`
	Jobs           []domain.Job `json:"jobs"`
	TotalFound     int          `json:"total_found"`
	Timestamp      string       `json:"timestamp"`
}

type searchCompanyJobsTool struct {
	svc     job.Service
	logger  *logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// WithSearchCompanyJobs registers the search_company_jobs tool
func WithSearchCompanyJobs(svc job.Service, logger *logging.Logger, m *metrics.Metrics) Option {
	return func(reg *registry) {
		handler := searchCompanyJobsTool{svc: svc, logger: logger, metrics: m, now: time.Now}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_company_jobs",
			Description: "Search for job opportunities at a specific company",
		}, handler.handle)
	}
}

func (t searchCompanyJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchCompanyJobsParams) (*sdkmcp.CallToolResult, any, error) {
	t.metrics.ToolInvoked("search_company_jobs")

	if params == nil {
		params = &SearchCompanyJobsParams{}
	}

	location := orString(params.Location, defaultLocation)
	country := orString(params.Country, defaultCountry)
	page := orInt(params.Page, defaultPage)
	pageSize := orInt(params.ResultsPerPage, defaultPageSize)

	jobs := t.svc.SearchByCompany(ctx, domain.CompanyRequest{
		Company:  params.CompanyName,
		Location: location,
		Country:  country,
		Page:     page,
		PageSize: pageSize,
	})

	result := SearchCompanyJobsResult{
		Company:        params.CompanyName,
		JobDescription: params.JobDescription,
		Location:       location,
		Country:        country,
		Page:           page,
		Jobs:           jobs,
		TotalFound:     len(jobs),
		Timestamp:      t.now().Format(time.RFC3339),
	}

	t.logger.Debug("search_company_jobs completed", "company", params.CompanyName, "total_found", result.TotalFound)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("search_company_jobs: marshal result: %w", err)
	}

	return textResult(string(payload)), result, nil
}
