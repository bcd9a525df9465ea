package mcp

import (
	"github.com/careertrail/jobs-internships-mcp/internal/domain/job"
	"github.com/careertrail/jobs-internships-mcp/internal/metrics"
	"github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
)

// Resources holds everything the server needs that outlives a single
// request: the job service, the long-lived upstream client, and the metrics
// collectors.
type Resources struct {
	JobService   job.Service
	AdzunaClient *adzuna.Client
	Metrics      *metrics.Metrics
}
