package purchaselist

import (
	"github.com/smallbiznis/barflow/internal/purchaselist/repository"
	"github.com/smallbiznis/barflow/internal/purchaselist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("purchaselist.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideItems),
	fx.Provide(service.New),
)
