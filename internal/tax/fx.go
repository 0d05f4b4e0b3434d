package tax

import (
	"github.com/gibbonedu/finance/internal/tax/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tax.service",
	fx.Provide(service.DefaultConfig),
	fx.Provide(service.NewService),
)
