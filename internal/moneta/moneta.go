// Package moneta provides exact decimal arithmetic for prices and quantities.
//
// The matching engine never touches binary floating point on the hot path: every
// price, quantity, and fill amount is a shopspring/decimal.Decimal, which is backed
// by an arbitrary-precision big.Int mantissa (comfortably beyond the 96 bits the
// original spec requires) and supports exact add/sub/compare with no epsilon.
package moneta

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Decimal is an exact decimal value. Zero value is 0.
type Decimal = decimal.Decimal

// Zero is the distinguished zero value used in termination tests.
var Zero = decimal.Zero

// ErrInvalidDecimal is returned by Parse when the input is not a finite,
// representable decimal (NaN, overflow, or malformed text).
var ErrInvalidDecimal = errors.New("moneta: invalid decimal")

// Parse decodes a wire-format decimal string. It never silently accepts
// malformed input: anything decimal.NewFromString itself rejects is wrapped
// in ErrInvalidDecimal so callers can map it to a single sentinel.
func Parse(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, ErrInvalidDecimal
	}
	return d, nil
}

// Precision is a (price, quantity) scale pair fixed at book creation.
type Precision struct {
	Price    int32
	Quantity int32
}

// Round applies banker's rounding (round-half-to-even) to scale places,
// matching the spec's requirement that incoming values are rounded to the
// book's configured precision before entering the book.
func Round(d Decimal, places int32) Decimal {
	return d.RoundBank(places)
}

// Min returns the smaller of a and b.
func Min(a, b Decimal) Decimal {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// IsZero reports whether d is exactly zero.
func IsZero(d Decimal) bool {
	return d.IsZero()
}
