package job

import (
	"context"

	"github.com/careertrail/jobs-internships-mcp/internal/domain"
)

// SearchQuery is the provider-level search shape, after the service has
// applied any keyword rewriting or page-size adjustment.
type SearchQuery struct {
	Keywords string
	Location string
	Country  string
	Page     int
	PageSize int
}

// Provider represents the upstream job source. There is exactly one in this
// deployment; the seam exists so the service can be tested without a network.
type Provider interface {
	Name() string

	// Search returns normalized records for a single upstream page.
	Search(ctx context.Context, q SearchQuery) ([]domain.Job, error)

	// Categories returns the raw category list for a country.
	Categories(ctx context.Context, country string) ([]domain.Category, error)
}
