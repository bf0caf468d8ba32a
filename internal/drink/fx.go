package drink

import (
	"github.com/smallbiznis/barflow/internal/drink/repository"
	"github.com/smallbiznis/barflow/internal/drink/service"
	"go.uber.org/fx"
)

var Module = fx.Module("drink.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
