package bootstrap

import (
	"log/slog"

	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"
	"staybook/internal/supplier"

	"go.uber.org/fx"
)

var SupplierModule = fx.Module("supplier",
	fx.Provide(
		NewSupplierClient,
		NewSupplierService,
	),
)

func NewSupplierClient(cfg config.Config, logger *slog.Logger) (*supplier.Client, error) {
	return supplier.NewClient(cfg.Supplier, logger)
}

func NewSupplierService(client *supplier.Client, tiered *cache.Tiered, cfg config.Config, logger *slog.Logger) *supplier.Service {
	return supplier.NewService(client, tiered, cfg.Cache, logger)
}
