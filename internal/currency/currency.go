// Package currency normalizes currency codes for internal bookkeeping.
// Normalization never fails and never influences the authorization decision.
package currency

import "strings"

// Default is used for any code outside the supported table.
const Default = "USD"

var supported = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
	"JPY": {},
	"RUB": {},
}

// Normalize uppercases code and maps it through the supported table,
// falling back to Default for anything unrecognized.
func Normalize(code string) string {
	up := strings.ToUpper(code)
	if _, ok := supported[up]; ok {
		return up
	}
	return Default
}
