package bootstrap

import (
	"staybook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CacheModule,
	SupplierModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	ReconcilerModule,
)
