//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/careertrail/jobs-internships-mcp/internal/config"
	"github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Adzuna
		provideAdzunaConfig,
		adzuna.NewClient,

		// Provider + service
		provideAdzunaProvider,
		provideJobService,

		// Observability
		provideMetrics,

		newResources,
	)

	return &Resources{}, nil
}
