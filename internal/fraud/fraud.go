// Package fraud screens card numbers before they ever reach the gateway.
package fraud

import (
	"strings"

	"github.com/alovak/paysim-playground/internal/card"
)

// denylist holds the PAN prefixes flagged as fraud regardless of checksum
// validity. 5500 is deliberately absent: those cards pass screening and are
// declined later at the gateway with "Insufficient funds".
var denylist = [...]string{"4444", "5555", "1111", "9999"}

// Suspicious reports whether the card number fails the Luhn checksum or
// carries a denylisted prefix.
func Suspicious(number string) bool {
	if card.LuhnInvalid(number) {
		return true
	}
	for _, prefix := range denylist {
		if strings.HasPrefix(number, prefix) {
			return true
		}
	}
	return false
}
