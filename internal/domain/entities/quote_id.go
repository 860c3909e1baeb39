package entities

import (
	"fmt"
	"regexp"
	"strconv"
)

// Canonical quote IDs look like Q-2026-000123: the issuing year and a
// six-digit per-company sequence. Staff read these over the phone, so the
// format never changes shape.
const (
	QuoteIDPrefix = "Q"

	// MaxQuoteSequence is the last sequence the six-digit space can hold.
	MaxQuoteSequence int64 = 999999
)

var quoteIDPattern = regexp.MustCompile(`^Q-(\d{4})-(\d{6})$`)

// FormatQuoteID renders the canonical form. Sequence must already be
// validated against MaxQuoteSequence by the caller.
func FormatQuoteID(year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", QuoteIDPrefix, year, seq)
}

// ParseQuoteID extracts year and sequence from a canonical ID.
// Malformed input returns an error, never panics.
func ParseQuoteID(id string) (year int, seq int64, err error) {
	m := quoteIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("malformed quote id %q", id)
	}
	year, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed quote id %q: %w", id, err)
	}
	seq, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed quote id %q: %w", id, err)
	}
	return year, seq, nil
}

func IsValidQuoteID(id string) bool {
	return quoteIDPattern.MatchString(id)
}
