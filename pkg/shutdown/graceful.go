package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
)

// Stoppable is anything with a context-bounded shutdown.
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives, then shuts down every
// Stoppable in order under a shared deadline.
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, stoppables ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, s := range stoppables {
		if s == nil {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown completed with error", "err", err)
		}
	}

	log.Info("graceful shutdown completed")
}
