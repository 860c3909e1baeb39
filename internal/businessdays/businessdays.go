// Package businessdays computes shop-calendar dates. Weekends are skipped;
// holidays are intentionally out: stores maintain their own closure lists and
// adjust promises by hand.
package businessdays

import "time"

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Add advances from the given time by n business days. A promise made on a
// weekend starts counting from the next weekday. n <= 0 returns from unchanged.
func Add(from time.Time, n int) time.Time {
	t := from
	for i := 0; i < n; {
		t = t.AddDate(0, 0, 1)
		if IsBusinessDay(t) {
			i++
		}
	}
	return t
}
