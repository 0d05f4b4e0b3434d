package domain

import (
	"context"
	"errors"
)

// Service walks invoices through their lifecycle. Invoices are values in,
// values out; persisting the result belongs to the caller's gateway layer.
type Service interface {
	Issue(ctx context.Context, inv Invoice) (Invoice, error)
	Cancel(ctx context.Context, inv Invoice) (Invoice, error)
	Refund(ctx context.Context, inv Invoice) (Invoice, error)
	Reprice(inv Invoice) Invoice
}

var (
	ErrInvoiceNotPending     = errors.New("invoice_not_pending")
	ErrInvoiceNotCancellable = errors.New("invoice_not_cancellable")
	ErrInvoiceNotRefundable  = errors.New("invoice_not_refundable")
)
