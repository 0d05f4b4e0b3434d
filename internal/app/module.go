// Package app composes every finance module into one fx graph for host
// applications to embed.
package app

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gibbonedu/finance/internal/clock"
	"github.com/gibbonedu/finance/internal/invoice"
	"github.com/gibbonedu/finance/internal/observability/logger"
	"github.com/gibbonedu/finance/internal/payment"
	"github.com/gibbonedu/finance/internal/releve24"
	"github.com/gibbonedu/finance/internal/sequence"
	"github.com/gibbonedu/finance/internal/tax"
	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	clock.Module,
	fx.Provide(newNode),
	sequence.Module,
	tax.Module,
	invoice.Module,
	payment.Module,
	releve24.Module,
)

func newNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
