package domain

import "github.com/shopspring/decimal"

// Balance is total minus paid, never floored: a negative balance means the
// invoice is overpaid by that amount.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// ExceedsBalance reports whether amount is strictly greater than the
// remaining balance. Paying the exact balance never exceeds.
func ExceedsBalance(amount, balance decimal.Decimal) bool {
	return amount.GreaterThan(balance)
}

// Overpayment is the portion of amount above the remaining balance,
// floored at zero.
func Overpayment(amount, balance decimal.Decimal) decimal.Decimal {
	over := amount.Sub(balance)
	if over.IsNegative() {
		return decimal.Zero
	}
	return over
}
