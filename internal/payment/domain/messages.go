package domain

import "errors"

// IsValidationError reports whether err is a caller-correctable input
// problem rather than an infrastructure failure.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidMethod),
		errors.Is(err, ErrMissingReference),
		errors.Is(err, ErrExceedsBalance),
		errors.Is(err, ErrInvoiceNotPayable):
		return true
	}
	return false
}

// ValidationMessage renders the user-facing message for a validation
// sentinel, empty for anything else.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "Payment amount must be greater than zero."
	case errors.Is(err, ErrInvalidMethod):
		return "Unknown payment method."
	case errors.Is(err, ErrMissingReference):
		return "A reference is required for this payment method."
	case errors.Is(err, ErrExceedsBalance):
		return "Payment exceeds the remaining invoice balance."
	case errors.Is(err, ErrInvoiceNotPayable):
		return "This invoice can no longer accept payments."
	}
	return ""
}
