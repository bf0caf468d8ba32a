package event

import (
	"github.com/smallbiznis/barflow/internal/event/repository"
	"github.com/smallbiznis/barflow/internal/event/service"
	"go.uber.org/fx"
)

var Module = fx.Module("event.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideServedDrinks),
	fx.Provide(repository.ProvideAdditionalCosts),
	fx.Provide(service.New),
)
