package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/careertrail/jobs-internships-mcp/internal/domain"
	"github.com/careertrail/jobs-internships-mcp/internal/metrics"
	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
)

// companyOverfetch widens the upstream page for company searches so the
// client-side company filter still fills a full page.
const companyOverfetch = 3

// Service exposes the derived search modes. Every operation is fail-soft:
// transport errors, HTTP error statuses and undecodable bodies all collapse
// to an empty slice at this boundary, and callers never see an error value.
type Service interface {
	Search(ctx context.Context, req domain.SearchRequest) []domain.Job
	SearchInternships(ctx context.Context, req domain.InternshipRequest) []domain.Job
	SearchByCompany(ctx context.Context, req domain.CompanyRequest) []domain.Job
	SearchRemote(ctx context.Context, req domain.RemoteRequest) []domain.Job
	Categories(ctx context.Context, country string) []domain.Category
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

// WithProvider sets the upstream provider
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics sets the metrics collectors
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}, nil
}

type service struct {
	provider Provider
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

func (s *service) Search(ctx context.Context, req domain.SearchRequest) []domain.Job {
	jobs, err := s.provider.Search(ctx, SearchQuery{
		Keywords: req.Keywords,
		Location: req.Location,
		Country:  req.Country,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	s.metrics.UpstreamRequest("search", err)
	if err != nil {
		s.logger.Warn("job search failed, returning no results",
			"provider", s.provider.Name(),
			"keywords", req.Keywords,
			"err", err,
		)
		return []domain.Job{}
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs
}

// SearchInternships rewrites the keywords to bias upstream ranking toward
// internships. The rewrite is advisory only; whether a record counts as an
// internship is decided per record by the title rule at normalization time.
func (s *service) SearchInternships(ctx context.Context, req domain.InternshipRequest) []domain.Job {
	keywords := "Intern"
	if req.Field != "" {
		keywords = req.Field + " Intern"
	}

	return s.Search(ctx, domain.SearchRequest{
		Keywords: keywords,
		Location: req.Location,
		Country:  req.Country,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// SearchByCompany over-fetches a single upstream page, then keeps records
// whose normalized company name matches the query by mutual containment,
// preserving upstream order and stopping at a full page of matches.
func (s *service) SearchByCompany(ctx context.Context, req domain.CompanyRequest) []domain.Job {
	fetched := s.Search(ctx, domain.SearchRequest{
		Keywords: req.Company,
		Location: req.Location,
		Country:  req.Country,
		Page:     req.Page,
		PageSize: req.PageSize * companyOverfetch,
	})

	want := strings.ToLower(strings.TrimSpace(req.Company))

	matched := []domain.Job{}
	for _, j := range fetched {
		have := strings.ToLower(strings.TrimSpace(j.Company))
		if have == want || strings.Contains(have, want) || strings.Contains(want, have) {
			matched = append(matched, j)
			if len(matched) >= req.PageSize {
				break
			}
		}
	}

	return matched
}

// SearchRemote biases the upstream query toward remote postings, then filters
// the normalized output by the record-level remote flag. The free-text bias
// is advisory; the location-substring check is authoritative.
func (s *service) SearchRemote(ctx context.Context, req domain.RemoteRequest) []domain.Job {
	keywords := "remote"
	if req.Keywords != "" {
		keywords = req.Keywords + " remote"
	}

	fetched := s.Search(ctx, domain.SearchRequest{
		Keywords: keywords,
		Location: "Remote",
		Country:  req.Country,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	remote := []domain.Job{}
	for _, j := range fetched {
		if j.Remote {
			remote = append(remote, j)
		}
	}

	return remote
}

func (s *service) Categories(ctx context.Context, country string) []domain.Category {
	cats, err := s.provider.Categories(ctx, country)
	s.metrics.UpstreamRequest("categories", err)
	if err != nil {
		s.logger.Warn("category fetch failed, returning no results",
			"provider", s.provider.Name(),
			"country", country,
			"err", err,
		)
		return []domain.Category{}
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats
}
