// Package card holds structural PAN checks shared by the fraud screen and the
// request validator.
package card

import "strings"

const (
	minPANLen = 13
	maxPANLen = 19
)

// ValidFormat reports whether number is a structurally valid PAN: ASCII digits
// only, 13 to 19 of them. Separators such as spaces or dashes fail the check.
func ValidFormat(number string) bool {
	if l := len(number); l < minPANLen || l > maxPANLen {
		return false
	}
	return IsDigits(number)
}

// LuhnInvalid reports whether number fails the Luhn mod-10 checksum. Inputs
// that are not purely numeric (including the empty string) count as invalid.
func LuhnInvalid(number string) bool {
	if number == "" || !IsDigits(number) {
		return true
	}
	sum, dbl := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 != 0
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastN returns the last n characters of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Mask hides the middle of a PAN, keeping BIN and last four where the length
// allows it.
func Mask(pan string) string {
	cleaned := Normalize(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}

// Normalize strips spaces, tabs and dashes, returning the bare digit string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}
