package adzuna

import (
	"context"
	"fmt"

	"github.com/careertrail/jobs-internships-mcp/internal/domain"
	jobdomain "github.com/careertrail/jobs-internships-mcp/internal/domain/job"
	"github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	Search(ctx context.Context, q adzuna.Query) (adzuna.SearchResponse, error)
	Categories(ctx context.Context, country string) ([]adzuna.Category, error)
}

// Provider implements job.Provider against the Adzuna API
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Search queries Adzuna and maps each raw posting to a canonical record.
func (p *Provider) Search(ctx context.Context, q jobdomain.SearchQuery) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	resp, err := p.client.Search(ctx, adzuna.Query{
		What:           q.Keywords,
		Where:          q.Location,
		Country:        q.Country,
		Page:           q.Page,
		ResultsPerPage: q.PageSize,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(resp.Results))
	for _, posting := range resp.Results {
		out = append(out, mapPosting(posting))
	}

	return out, nil
}

// Categories returns the raw upstream category list.
func (p *Provider) Categories(ctx context.Context, country string) ([]domain.Category, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	cats, err := p.client.Categories(ctx, country)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, domain.Category{Tag: c.Tag, Label: c.Label})
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)
