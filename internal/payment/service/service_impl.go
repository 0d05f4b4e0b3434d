package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gibbonedu/finance/internal/clock"
	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
	"github.com/gibbonedu/finance/internal/observability/logger"
	"github.com/gibbonedu/finance/internal/payment/domain"
	sequencedomain "github.com/gibbonedu/finance/internal/sequence/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Numbers sequencedomain.Generator
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	numbers sequencedomain.Generator
}

func NewService(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("payment.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		numbers: p.Numbers,
	}
}

func (s *Service) Validate(ctx context.Context, req domain.RecordRequest, inv invoicedomain.Invoice) (domain.Check, error) {
	return domain.Validate(req, inv)
}

// Record validates req, mints the payment and its receipt number, applies
// the amount, and recomputes the invoice status. The updated invoice and
// payment are returned for the caller to persist; nothing is stored here.
func (s *Service) Record(ctx context.Context, inv invoicedomain.Invoice, req domain.RecordRequest) (domain.RecordResult, error) {
	req.Reference = strings.TrimSpace(req.Reference)

	check, err := domain.Validate(req, inv)
	if err != nil {
		return domain.RecordResult{Invoice: inv, Check: check}, err
	}

	now := s.clock.Now()
	payment := domain.Payment{
		ID:          s.genID.Generate(),
		InvoiceID:   inv.ID,
		Amount:      req.Amount,
		Method:      req.Method,
		PaymentDate: now,
		Reference:   req.Reference,
		Metadata:    req.Metadata,
	}

	previous := inv.Status
	inv.PaidAmount = inv.PaidAmount.Add(req.Amount)
	inv.Status = invoicedomain.DetermineStatus(inv.TotalAmount, inv.PaidAmount, inv.Status)
	if inv.Status == invoicedomain.StatusPaid && inv.PaidAt == nil {
		paidAt := now
		inv.PaidAt = &paidAt
	}

	receipt := s.numbers.Next(ctx, domain.ReceiptNumberPrefix)

	log := logger.WithContext(ctx, s.log)
	log.Info("payment recorded",
		zap.Int64("invoice_id", int64(inv.ID)),
		zap.Int64("payment_id", int64(payment.ID)),
		zap.String("method", string(req.Method)),
		zap.String("receipt_number", receipt),
		zap.String("previous_status", string(previous)),
		zap.String("status", string(inv.Status)),
	)
	if len(req.Metadata) > 0 {
		log.Debug("payment metadata", zap.Any("metadata", logger.MaskJSON(req.Metadata)))
	}

	return domain.RecordResult{
		Invoice:       inv,
		Payment:       payment,
		ReceiptNumber: receipt,
		Check:         check,
	}, nil
}
