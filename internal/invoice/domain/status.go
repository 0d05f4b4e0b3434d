package domain

import "github.com/shopspring/decimal"

// DetermineStatus derives the financial status from amounts. Cancelled and
// Refunded are terminal and returned unchanged regardless of amounts. Any
// paid >= total is Paid, overpayment included; there is no separate
// overpaid status. With nothing paid, an explicitly Issued invoice stays
// Issued and everything else is Pending.
//
// A zero-total invoice is Paid: paid(0) >= total(0).
func DetermineStatus(total, paid decimal.Decimal, current InvoiceStatus) InvoiceStatus {
	if current.Terminal() {
		return current
	}
	if paid.GreaterThanOrEqual(total) {
		return StatusPaid
	}
	if paid.IsPositive() {
		return StatusPartial
	}
	if current == StatusIssued {
		return StatusIssued
	}
	return StatusPending
}
