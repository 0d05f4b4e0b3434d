package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// ReceiptNumberPrefix starts every payment receipt number; receipts share
// the sequence machinery with invoices and slips.
const ReceiptNumberPrefix = "REC-"

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCheck        PaymentMethod = "check"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOnline       PaymentMethod = "online"
)

// ParseMethod normalizes raw user input ("Bank Transfer", " cash ") into a
// PaymentMethod.
func ParseMethod(raw string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	method := PaymentMethod(normalized)
	if err := ValidateMethod(method); err != nil {
		return "", err
	}
	return method, nil
}

// Payment is immutable once recorded. Metadata carries gateway response
// fields for online payments and is only ever logged masked.
type Payment struct {
	ID          snowflake.ID    `json:"id"`
	InvoiceID   snowflake.ID    `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	Reference   string          `json:"reference,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// RecordRequest is the caller's input for recording a payment against an
// invoice.
type RecordRequest struct {
	Amount    decimal.Decimal
	Method    PaymentMethod
	Reference string
	Metadata  map[string]any
}

// Check carries the balance arithmetic computed during validation. It is
// populated for display even when validation fails.
type Check struct {
	BalanceRemaining decimal.Decimal `json:"balance_remaining"`
	Overpayment      decimal.Decimal `json:"overpayment"`
}

// RecordResult is the outcome of recording a payment: the updated invoice
// copy, the minted payment, and its receipt number. The caller persists
// all of it.
type RecordResult struct {
	Invoice       invoicedomain.Invoice `json:"invoice"`
	Payment       Payment               `json:"payment"`
	ReceiptNumber string                `json:"receipt_number"`
	Check         Check                 `json:"check"`
}
