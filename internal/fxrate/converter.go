// Package fxrate holds the USD/EUR conversion helpers used across payout
// and P&L computation. A rate is always the USD -> EUR multiplier captured
// at computation time, so historical amounts never drift when rates change.
package fxrate

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned by Validate for a zero or negative rate.
// Passing such a rate to the conversion functions is a caller error.
var ErrInvalidRate = errors.New("invalid_fx_rate")

// Validate rejects rates that cannot be used for conversion.
func Validate(rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	return nil
}

// UsdToEur converts a USD amount using the snapshot rate. The result is not
// rounded; rounding happens once, at finalization, via Round2.
func UsdToEur(usd, rate float64) float64 {
	return usd * rate
}

// EurToUsd converts a EUR amount using the snapshot rate.
func EurToUsd(eur, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return eur / rate
}

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Intermediate sums stay unrounded so rounding error does not compound.
func Round2(amount float64) float64 {
	out, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return out
}
