package decimal

import (
	"github.com/calebcase/gcode/significand"
)

// Decimal is a fixed point base 10 number.
//
// The sign is encoded in the significand; there is no provision for a
// negative zero. The negative exponent is the count of the significand's
// digits right of the decimal point.
type Decimal[S significand.Significand[S]] struct {
	significand      S
	negativeExponent uint32
}

// New returns a Decimal with the given significand and negative exponent.
func New[S significand.Significand[S]](s S, negativeExponent uint32) Decimal[S] {
	return Decimal[S]{
		significand:      s,
		negativeExponent: negativeExponent,
	}
}

// Significand returns the significand of the number.
func (d Decimal[S]) Significand() S {
	return d.significand
}

// NegativeExponent returns the negative exponent of the number.
func (d Decimal[S]) NegativeExponent() uint32 {
	return d.negativeExponent
}
