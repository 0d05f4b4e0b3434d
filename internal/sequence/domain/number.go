package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FirstSequence is where every prefix starts, and the fallback sequence
// when the max lookup cannot be served.
const FirstSequence int64 = 1

const sequenceDigits = 6

// FormatNumber renders prefix + zero-padded sequence, e.g. ("INV-", 6)
// yields INV-000006. Sequences beyond six digits widen without truncation.
func FormatNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, sequenceDigits, seq)
}

// ParseNumber recovers the sequence from a formatted number so callers can
// record issued numbers back into their store.
func ParseNumber(prefix, number string) (int64, error) {
	rest, ok := strings.CutPrefix(number, prefix)
	if !ok || len(rest) < sequenceDigits {
		return 0, ErrMalformedNumber
	}
	seq, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || seq < FirstSequence {
		return 0, ErrMalformedNumber
	}
	return seq, nil
}
