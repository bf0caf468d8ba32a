package recipe

import (
	"github.com/smallbiznis/barflow/internal/recipe/repository"
	"github.com/smallbiznis/barflow/internal/recipe/service"
	"go.uber.org/fx"
)

var Module = fx.Module("recipe.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
