package service

import (
	"context"
	"strings"

	"github.com/gibbonedu/finance/internal/clock"
	"github.com/gibbonedu/finance/internal/invoice/domain"
	"github.com/gibbonedu/finance/internal/observability/logger"
	sequencedomain "github.com/gibbonedu/finance/internal/sequence/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	Numbers sequencedomain.Generator
}

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	numbers sequencedomain.Generator
}

func NewService(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("invoice.service"),
		clock:   p.Clock,
		numbers: p.Numbers,
	}
}

// Issue moves a pending invoice to Issued, assigning the next invoice
// number when none was reserved and defaulting the invoice date to now.
func (s *Service) Issue(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	if inv.Status != domain.StatusPending {
		return inv, domain.ErrInvoiceNotPending
	}

	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		inv.InvoiceNumber = s.numbers.Next(ctx, domain.NumberPrefix)
	}
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = s.clock.Now()
	}
	inv.Status = domain.StatusIssued

	logger.WithContext(ctx, s.log).Info("invoice issued",
		zap.Int64("invoice_id", int64(inv.ID)),
		zap.String("invoice_number", inv.InvoiceNumber),
	)
	return inv, nil
}

// Cancel marks an unpaid invoice Cancelled. A fully paid invoice is
// refunded instead, never cancelled.
func (s *Service) Cancel(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	switch inv.Status {
	case domain.StatusPending, domain.StatusIssued, domain.StatusPartial:
	default:
		return inv, domain.ErrInvoiceNotCancellable
	}
	previous := inv.Status
	inv.Status = domain.StatusCancelled

	logger.WithContext(ctx, s.log).Info("invoice cancelled",
		zap.Int64("invoice_id", int64(inv.ID)),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("previous_status", string(previous)),
	)
	return inv, nil
}

// Refund marks a partially or fully paid invoice Refunded.
func (s *Service) Refund(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	switch inv.Status {
	case domain.StatusPartial, domain.StatusPaid:
	default:
		return inv, domain.ErrInvoiceNotRefundable
	}
	inv.Status = domain.StatusRefunded

	logger.WithContext(ctx, s.log).Info("invoice refunded",
		zap.Int64("invoice_id", int64(inv.ID)),
		zap.String("invoice_number", inv.InvoiceNumber),
	)
	return inv, nil
}

// Reprice recomputes the status from the invoice amounts. Terminal
// statuses pass through unchanged.
func (s *Service) Reprice(inv domain.Invoice) domain.Invoice {
	inv.Status = domain.DetermineStatus(inv.TotalAmount, inv.PaidAmount, inv.Status)
	return inv
}
