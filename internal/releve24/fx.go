package releve24

import (
	"github.com/gibbonedu/finance/internal/releve24/domain"
	"github.com/gibbonedu/finance/internal/releve24/memory"
	"github.com/gibbonedu/finance/internal/releve24/service"
	"go.uber.org/fx"
)

var Module = fx.Module("releve24.service",
	fx.Provide(memory.NewStore),
	fx.Provide(func(s *memory.Store) domain.Store { return s }),
	fx.Provide(service.NewService),
)
