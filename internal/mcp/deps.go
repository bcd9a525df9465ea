package mcp

import (
	"github.com/careertrail/jobs-internships-mcp/internal/config"
	"github.com/careertrail/jobs-internships-mcp/internal/domain/job"
	adzunaProvider "github.com/careertrail/jobs-internships-mcp/internal/domain/job/providers/adzuna"
	"github.com/careertrail/jobs-internships-mcp/internal/metrics"
	"github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
)

// provideAdzunaConfig extracts Adzuna client config from main config
func provideAdzunaConfig(cfg config.Config) adzuna.Config {
	return adzuna.Config{
		AppID:   cfg.Adzuna.AppID,
		AppKey:  cfg.Adzuna.AppKey,
		BaseURL: cfg.Adzuna.BaseURL,
	}
}

// provideAdzunaProvider creates an Adzuna provider from the client
func provideAdzunaProvider(client *adzuna.Client) (*adzunaProvider.Provider, error) {
	return adzunaProvider.NewProvider(client)
}

// provideMetrics creates the server's metric collectors on a fresh registry
func provideMetrics() *metrics.Metrics {
	return metrics.New(nil)
}

// provideJobService builds the job service over the single provider
func provideJobService(provider *adzunaProvider.Provider, logger *logging.Logger, m *metrics.Metrics) (job.Service, error) {
	return job.NewService(
		job.WithProvider(provider),
		job.WithLogger(logger),
		job.WithMetrics(m),
	)
}

// newResources creates the Resources struct
func newResources(jobService job.Service, client *adzuna.Client, m *metrics.Metrics) *Resources {
	return &Resources{
		JobService:   jobService,
		AdzunaClient: client,
		Metrics:      m,
	}
}
