package units

import (
	"github.com/smallbiznis/barflow/internal/units/repository"
	"github.com/smallbiznis/barflow/internal/units/service"
	"go.uber.org/fx"
)

var Module = fx.Module("units.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
