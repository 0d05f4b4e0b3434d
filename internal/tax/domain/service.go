package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Breakdown is the per-component tax result callers render on invoices
// and receipts. Each component is rounded to cents independently; Total
// is the sum of the rounded components, never a re-rounded product.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	GST      decimal.Decimal `json:"gst"`
	QST      decimal.Decimal `json:"qst"`
	Total    decimal.Decimal `json:"total"`
}

// Service computes Canadian GST and Quebec QST. QST applies to the
// subtotal only and is never compounded on subtotal+GST.
type Service interface {
	GST(subtotal decimal.Decimal) (decimal.Decimal, error)
	QST(subtotal decimal.Decimal) (decimal.Decimal, error)
	Total(subtotal decimal.Decimal) (decimal.Decimal, error)
	Breakdown(subtotal decimal.Decimal) (Breakdown, error)
}

var (
	ErrNegativeAmount = errors.New("negative_amount")
)
