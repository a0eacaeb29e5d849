package domain

import "fmt"

// Cents is a currency amount in integer USD cents.
type Cents int64

func (c Cents) String() string {
	if c%100 == 0 {
		return fmt.Sprintf("$%d", c/100)
	}
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// PricingTier is static configuration data, never fetched.
type PricingTier struct {
	Name     string
	Sessions int
	Total    Cents
}

// PerSession is the derived display price. Zero sessions yields zero
// rather than dividing by zero; config validation rejects that case.
func (t PricingTier) PerSession() Cents {
	if t.Sessions <= 0 {
		return 0
	}
	return t.Total / Cents(t.Sessions)
}
