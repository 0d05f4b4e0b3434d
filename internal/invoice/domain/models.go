package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// NumberPrefix starts every invoice number; the sequence store scopes
// max-number lookups by this prefix.
const NumberPrefix = "INV-"

type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusIssued    InvoiceStatus = "issued"
	StatusPartial   InvoiceStatus = "partial"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
	StatusRefunded  InvoiceStatus = "refunded"
)

// Terminal reports whether the status is sticky: Cancelled and Refunded
// are never recomputed from amounts.
func (s InvoiceStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// Invoice is a plain value record. Callers persist it through their own
// gateway layer; nothing here touches storage.
type Invoice struct {
	ID            snowflake.ID    `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Status        InvoiceStatus   `json:"status"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

// Balance is the remaining amount owed on the invoice.
func (i Invoice) Balance() decimal.Decimal {
	return Balance(i.TotalAmount, i.PaidAmount)
}
