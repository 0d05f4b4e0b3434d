// Package sin validates and formats Canadian Social Insurance Numbers.
package sin

import "strings"

const sinDigits = 9

// Format strips all non-digit characters and renders the canonical
// DDD-DDD-DDD form. Anything other than exactly nine digits yields "".
func Format(raw string) string {
	digits := digitsOf(raw)
	if len(digits) != sinDigits {
		return ""
	}
	return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:9]
}

// Valid reports whether raw is a nine-digit SIN with a correct Luhn
// checksum. Too-short and too-long inputs fail without running the
// checksum.
func Valid(raw string) bool {
	digits := digitsOf(raw)
	if len(digits) != sinDigits {
		return false
	}
	return luhn(digits)
}

// Mask keeps only the last group for logs, e.g. ***-***-286. Inputs that
// do not format to a SIN are masked entirely.
func Mask(raw string) string {
	formatted := Format(raw)
	if formatted == "" {
		return "***-***-***"
	}
	return "***-***-" + formatted[8:]
}

func digitsOf(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// luhn doubles every second digit starting from the second-to-last,
// folding doubled values above nine back to a single digit.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
