// Package gateway simulates an external payment network with fixed,
// deterministic rules. It stands in for the remote call a real processor
// would make, so outcomes are reproducible in tests.
package gateway

import "strings"

// Decline reasons returned by TryCharge. These strings are part of the
// caller-facing contract.
const (
	ReasonLimitExceeded     = "Transaction limit exceeded"
	ReasonCardBlocked       = "Card blocked"
	ReasonInsufficientFunds = "Insufficient funds"
	ReasonTimeout           = "Gateway timeout"
)

const (
	txLimit        = 100_000
	blockedPrefix  = "4444"
	noFundsPrefix  = "5500"
	timeoutModulus = 17
)

// Outcome is the gateway's verdict for a single charge attempt. Message is
// empty when Approved is true.
type Outcome struct {
	Approved bool
	Message  string
}

// TryCharge evaluates the simulated network rules in priority order; the
// first match wins. The amount ceiling outranks card-specific rules so a
// blocked card over the limit still reports the limit. The modulo rule is a
// stand-in for gateway flakiness and only fires after every deterministic
// card rule has been checked.
func TryCharge(cardNumber string, amount int64) Outcome {
	switch {
	case amount > txLimit:
		return declined(ReasonLimitExceeded)
	case strings.HasPrefix(cardNumber, blockedPrefix):
		return declined(ReasonCardBlocked)
	case strings.HasPrefix(cardNumber, noFundsPrefix):
		return declined(ReasonInsufficientFunds)
	case amount%timeoutModulus == 0:
		return declined(ReasonTimeout)
	default:
		return Outcome{Approved: true}
	}
}

func declined(reason string) Outcome {
	return Outcome{Message: reason}
}
