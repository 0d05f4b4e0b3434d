package domain

import (
	"strings"

	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// ValidateAmount rejects non-positive payment amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateMethod rejects methods outside the closed set.
func ValidateMethod(method PaymentMethod) error {
	switch method {
	case MethodCash, MethodCheck, MethodBankTransfer, MethodOnline:
		return nil
	default:
		return ErrInvalidMethod
	}
}

// RequiresReference reports whether the method needs an external
// reference: check numbers, transfer confirmations, gateway transaction
// IDs. Cash has nothing to reference.
func RequiresReference(method PaymentMethod) bool {
	switch method {
	case MethodCheck, MethodBankTransfer, MethodOnline:
		return true
	default:
		return false
	}
}

func ValidateReference(method PaymentMethod, reference string) error {
	if RequiresReference(method) && strings.TrimSpace(reference) == "" {
		return ErrMissingReference
	}
	return nil
}

// ValidateAgainstInvoice checks amount against the invoice balance. The
// returned Check carries the balance remaining and any overpayment for
// display regardless of the verdict. Terminal and fully paid invoices
// never accept another payment.
func ValidateAgainstInvoice(amount decimal.Decimal, inv invoicedomain.Invoice) (Check, error) {
	balance := inv.Balance()
	check := Check{
		BalanceRemaining: balance,
		Overpayment:      invoicedomain.Overpayment(amount, balance),
	}

	switch inv.Status {
	case invoicedomain.StatusPaid, invoicedomain.StatusCancelled, invoicedomain.StatusRefunded:
		return check, ErrInvoiceNotPayable
	}
	if invoicedomain.ExceedsBalance(amount, balance) {
		return check, ErrExceedsBalance
	}
	return check, nil
}

// Validate runs the full chain for recording req against inv: amount,
// method, reference, then balance.
func Validate(req RecordRequest, inv invoicedomain.Invoice) (Check, error) {
	if err := ValidateAmount(req.Amount); err != nil {
		return Check{BalanceRemaining: inv.Balance()}, err
	}
	if err := ValidateMethod(req.Method); err != nil {
		return Check{BalanceRemaining: inv.Balance()}, err
	}
	if err := ValidateReference(req.Method, req.Reference); err != nil {
		return Check{BalanceRemaining: inv.Balance()}, err
	}
	return ValidateAgainstInvoice(req.Amount, inv)
}
