package srv

import (
	"context"

	"github.com/sandevgo/campusbot/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts services one after another on the calling goroutine. A service
// whose Start blocks (the console loop) holds the process until it returns.
// Every service that was started is shut down in reverse order, even when a
// later one failed to start.
func Run(ctx context.Context, services []Service) error {
	logger := log.FromCtx(ctx)

	started := make([]Service, 0, len(services))
	var runErr error
	for _, service := range services {
		if err := service.Start(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to start", service)
			runErr = err
			break
		}
		started = append(started, service)
	}

	ShutdownServices(ctx, started)
	return runErr
}

func ShutdownServices(ctx context.Context, services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
