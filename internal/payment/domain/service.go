package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
)

// Service validates and records payments against invoices. Values in,
// values out; the caller persists the result.
type Service interface {
	Validate(ctx context.Context, req RecordRequest, inv invoicedomain.Invoice) (Check, error)
	Record(ctx context.Context, inv invoicedomain.Invoice, req RecordRequest) (RecordResult, error)
}

var (
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInvalidMethod     = errors.New("invalid_method")
	ErrMissingReference  = errors.New("missing_reference")
	ErrExceedsBalance    = errors.New("payment_exceeds_balance")
	ErrInvoiceNotPayable = errors.New("invoice_not_payable")
)
