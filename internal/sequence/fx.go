package sequence

import (
	"github.com/gibbonedu/finance/internal/sequence/domain"
	"github.com/gibbonedu/finance/internal/sequence/memory"
	"github.com/gibbonedu/finance/internal/sequence/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sequence.service",
	fx.Provide(memory.NewStore),
	fx.Provide(func(s *memory.Store) domain.Store { return s }),
	fx.Provide(service.NewGenerator),
)
