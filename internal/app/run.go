package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/algoprovider/internal/ctxlog"
)

// Run loads the catalogue and writes it to the output. With a health check
// port configured it then keeps serving until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	if err := a.host.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load algorithms: %w", err)
	}

	listings := a.host.Algorithms(ctx)
	if err := writeListings(a.outW, a.config.Output, listings); err != nil {
		return fmt.Errorf("failed to write algorithm listing: %w", err)
	}

	if a.config.HealthcheckPort > 0 {
		serverErr := a.startHealthCheckServer()
		select {
		case err := <-serverErr:
			return fmt.Errorf("health check server: %w", err)
		case <-ctx.Done():
			a.logger.Info("Shutdown requested.")
		}
		if err := a.closeHealthCheckServer(); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
