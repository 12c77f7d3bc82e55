// Package expiry validates card expiry dates against a supplied current date.
package expiry

import "time"

// Valid reports whether a card expiring at (month, year) is usable at now.
// A card expiring in the current month stays valid through that month; a
// month outside 01..12 is never valid.
func Valid(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year != now.Year() {
		return year > now.Year()
	}
	return month >= int(now.Month())
}
