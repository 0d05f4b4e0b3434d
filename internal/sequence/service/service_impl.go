package service

import (
	"context"

	"github.com/gibbonedu/finance/internal/observability/logger"
	"github.com/gibbonedu/finance/internal/sequence/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Store domain.Store
}

type Generator struct {
	log   *zap.Logger
	store domain.Store
}

func NewGenerator(p Params) domain.Generator {
	return &Generator{
		log:   p.Log.Named("sequence.service"),
		store: p.Store,
	}
}

// Next returns prefix + zero-padded(max+1). A missing max starts the
// sequence at 1. A store failure falls back to the first sequence number
// instead of propagating: the number is advisory until storage enforces
// uniqueness at insert time.
func (g *Generator) Next(ctx context.Context, prefix string) string {
	max, found, err := g.store.MaxSequence(ctx, prefix)
	if err != nil {
		logger.WithContext(ctx, g.log).Warn("sequence lookup failed, using first sequence",
			zap.String("prefix", prefix),
			zap.Error(err),
		)
		return domain.FormatNumber(prefix, domain.FirstSequence)
	}
	if !found || max < domain.FirstSequence {
		return domain.FormatNumber(prefix, domain.FirstSequence)
	}
	return domain.FormatNumber(prefix, max+1)
}
