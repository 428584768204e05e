// Package significand provides the checked integer arithmetic under
// package decimal.
//
// A significand is the sign-inclusive digit string of a decimal number
// before the power-of-ten scale is applied. The Significand interface is
// the capability a bounded integer type must supply; Int32, Int64, and
// ShiftInt32 are the provided implementations.
package significand

// Significand is the capability required of a type that stores the
// integer digits of a decimal number.
//
// Every operation is checked: on overflow ok is false and the returned
// value must not be used. Wraparound never escapes an implementation.
type Significand[S any] interface {
	// IsZero returns true if the number is zero.
	IsZero() bool

	// Shl10 computes self * 10^exp.
	Shl10(exp uint32) (_ S, ok bool)

	// AddUnsigned computes self + rhs.
	AddUnsigned(rhs uint32) (_ S, ok bool)

	// SubUnsigned computes self - rhs.
	SubUnsigned(rhs uint32) (_ S, ok bool)
}

// AppendDigit appends the digit byte c to s at the given power-of-ten
// weight, adding the digit when sign is Positive and subtracting it when
// Negative.
//
// A byte outside '0' through '9' fails. So does overflow in any of the
// checked steps, indistinguishably: every failure is equally terminal for
// the literal being parsed.
func AppendDigit[S Significand[S]](s S, exp uint32, c byte, sign Sign) (S, bool) {
	if c < '0' || c > '9' {
		return s, false
	}

	digit := uint32(c - '0')

	s, ok := s.Shl10(exp)
	if !ok {
		return s, false
	}

	if sign == Negative {
		return s.SubUnsigned(digit)
	}

	return s.AddUnsigned(digit)
}
