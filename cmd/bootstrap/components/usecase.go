package components

import (
	"staybook/internal/pkg/clock"
	"staybook/internal/supplier"
	"staybook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			func(s *supplier.Service) *supplier.Service { return s },
			fx.As(new(usecase.SupplierGateway)),
			fx.As(new(usecase.CatalogGateway)),
		),
		usecase.NewBookingUseCase,
		usecase.NewHotelCatalogUseCase,
	),
)
