// Package loyalty maps a points balance to a capped discount.
package loyalty

import "errors"

// ErrBaseAmount is raised for a non-positive base amount. This is a contract
// violation by the caller, not a business outcome.
var ErrBaseAmount = errors.New("Base amount must be positive")

// Tier is one bracket of the discount policy. Lower bounds are inclusive.
type Tier struct {
	MinPoints int64
	RatePct   int64
	Cap       int64
}

// tiers is ordered by MinPoints ascending; the greatest MinPoints not
// exceeding the balance wins.
var tiers = []Tier{
	{MinPoints: 0, RatePct: 0, Cap: 0},
	{MinPoints: 500, RatePct: 5, Cap: 500},
	{MinPoints: 2000, RatePct: 10, Cap: 1500},
	{MinPoints: 5000, RatePct: 15, Cap: 3000},
	{MinPoints: 10000, RatePct: 20, Cap: 5000},
}

// Discount returns the discount for the given points balance applied to
// baseAmount, using floor arithmetic for the rate and capping at the tier
// limit.
func Discount(points, baseAmount int64) (int64, error) {
	if baseAmount <= 0 {
		return 0, ErrBaseAmount
	}
	tier := tiers[0]
	for _, t := range tiers {
		if points >= t.MinPoints {
			tier = t
		}
	}
	d := baseAmount * tier.RatePct / 100
	if d > tier.Cap {
		d = tier.Cap
	}
	return d, nil
}
