package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase"

	"go.uber.org/fx"
)

var ReconcilerModule = fx.Module("reconciler",
	fx.Invoke(StartReconciler),
)

// StartReconciler runs the periodic sweep over reservations stuck in
// booking_processing. Each tick polls the supplier for a batch and persists
// any terminal outcome.
func StartReconciler(lc fx.Lifecycle, cfg config.Config, bookingUseCase usecase.BookingUseCase, logger *slog.Logger) {
	interval := cfg.Booking.ReconcileInterval
	if interval <= 0 {
		logger.Info("booking reconciliation sweep disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						resolved, err := bookingUseCase.ReconcileStale(ctx, cfg.Booking.ReconcileAge, cfg.Booking.ReconcileBatch)
						if err != nil {
							logger.Error("reconciliation sweep failed", "error", err)
							continue
						}
						if resolved > 0 {
							logger.Info("reconciliation sweep resolved reservations", "count", resolved)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
