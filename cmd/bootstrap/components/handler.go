package components

import (
	"log/slog"

	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelsHandler,
		api.NewBookingHandler,
		NewWebhookHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookHandler(bookingUseCase usecase.BookingUseCase, cfg config.Config, logger *slog.Logger) *api.WebhookHandler {
	return api.NewWebhookHandler(bookingUseCase, cfg.Webhook, logger)
}
