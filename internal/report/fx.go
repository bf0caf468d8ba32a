package report

import (
	"github.com/smallbiznis/barflow/internal/report/repository"
	"github.com/smallbiznis/barflow/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
