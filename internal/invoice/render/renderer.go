package render

import (
	"time"

	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
	paymentdomain "github.com/gibbonedu/finance/internal/payment/domain"
	taxdomain "github.com/gibbonedu/finance/internal/tax/domain"
	"github.com/shopspring/decimal"
)

// RenderInput is the deterministic input used for receipt rendering.
type RenderInput struct {
	Template TemplateView
	Invoice  InvoiceView
	Family   FamilyView
	Payments []PaymentView
}

// TemplateView carries the centre's branding. GSTNumber and QSTNumber are
// the tax registration numbers Quebec requires on receipts that charge
// GST or QST.
type TemplateView struct {
	CompanyName  string
	LogoURL      string
	GSTNumber    string
	QSTNumber    string
	FooterNotes  string
	PrimaryColor string
	FontFamily   string
}

type InvoiceView struct {
	Number      string
	Status      string
	InvoiceDate time.Time
	DueDate     time.Time
	PaidAt      time.Time
	Subtotal    decimal.Decimal
	GST         decimal.Decimal
	QST         decimal.Decimal
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Balance     decimal.Decimal
}

type FamilyView struct {
	Name  string
	Email string
}

type PaymentView struct {
	ReceiptNumber string
	Date          time.Time
	Method        string
	Reference     string
	Amount        decimal.Decimal
}

// NewInvoiceView flattens an invoice and its tax breakdown for rendering.
func NewInvoiceView(inv invoicedomain.Invoice, taxes taxdomain.Breakdown) InvoiceView {
	view := InvoiceView{
		Number:      inv.InvoiceNumber,
		Status:      string(inv.Status),
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Subtotal:    taxes.Subtotal,
		GST:         taxes.GST,
		QST:         taxes.QST,
		Total:       inv.TotalAmount,
		Paid:        inv.PaidAmount,
		Balance:     inv.Balance(),
	}
	if inv.PaidAt != nil {
		view.PaidAt = *inv.PaidAt
	}
	return view
}

// NewPaymentView flattens a recorded payment and its receipt number.
func NewPaymentView(p paymentdomain.Payment, receiptNumber string) PaymentView {
	return PaymentView{
		ReceiptNumber: receiptNumber,
		Date:          p.PaymentDate,
		Method:        string(p.Method),
		Reference:     p.Reference,
		Amount:        p.Amount,
	}
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
