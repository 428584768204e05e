package decimal

import (
	"fmt"
	"math"

	"github.com/calebcase/gcode/significand"
)

type state uint8

const (
	stateStart state = iota
	stateSign
	stateLeadingDecimal
	stateInteger
	stateFraction
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateSign:
		return "sign"
	case stateLeadingDecimal:
		return "leading-decimal"
	case stateInteger:
		return "integer"
	case stateFraction:
		return "fraction"
	}

	return "unknown"
}

// Parser parses a single decimal literal one byte at a time. The zero
// value is ready to use. A parser handles exactly one literal: after End,
// or after any error, it must be Reset before further use.
type Parser[S significand.Significand[S]] struct {
	state            state
	sign             significand.Sign
	significand      S
	negativeExponent uint32

	// trailingZeros is the length of the current run of fractional
	// zeros. The next nonzero fractional digit lands at weight
	// trailingZeros+1, so a run costs one shift-and-append total
	// instead of one per zero.
	trailingZeros uint32
}

// Feed consumes one byte of the literal.
func (p *Parser[S]) Feed(c byte) error {
	digit := c >= '0' && c <= '9'

	switch {
	case p.state == stateStart && c == '+':
		p.state = stateSign
	case p.state == stateStart && c == '-':
		p.state = stateSign
		p.sign = significand.Negative
	case (p.state == stateStart || p.state == stateSign) && c == '.':
		p.state = stateLeadingDecimal
	case p.state == stateInteger && c == '.':
		p.state = stateFraction
	case (p.state == stateStart || p.state == stateSign || p.state == stateInteger) && digit:
		if c == '0' && p.significand.IsZero() {
			// Leading zeros never touch the significand.
			p.state = stateInteger

			return nil
		}

		s, ok := significand.AppendDigit(p.significand, 1, c, p.sign)
		if !ok {
			return Error.Wrap(ErrCapacity)
		}

		p.state = stateInteger
		p.significand = s
	case (p.state == stateLeadingDecimal || p.state == stateFraction) && c == '0':
		if p.trailingZeros >= math.MaxUint32-1 {
			return Error.Wrap(ErrCapacity)
		}

		p.state = stateFraction
		p.trailingZeros++
	case (p.state == stateLeadingDecimal || p.state == stateFraction) && digit:
		weight := p.trailingZeros + 1

		s, ok := significand.AppendDigit(p.significand, weight, c, p.sign)
		if !ok {
			return Error.Wrap(ErrCapacity)
		}

		if p.negativeExponent > math.MaxUint32-weight {
			return Error.Wrap(ErrCapacity)
		}

		p.state = stateFraction
		p.significand = s
		p.negativeExponent += weight
		p.trailingZeros = 0
	default:
		return Error.Wrap(fmt.Errorf("%w: %q in state %s", ErrInvalidCharacter, c, p.state))
	}

	return nil
}

// FeedString consumes the bytes of s in order. Feeding a string and
// feeding its bytes one at a time are equivalent.
func (p *Parser[S]) FeedString(s string) (err error) {
	for i := 0; i < len(s); i++ {
		err = p.Feed(s[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// End finalizes the literal, producing its value. It fails with
// ErrIncomplete unless at least one digit was consumed.
func (p *Parser[S]) End() (Decimal[S], error) {
	if p.state != stateInteger && p.state != stateFraction {
		return Decimal[S]{}, Error.Wrap(ErrIncomplete)
	}

	return New(p.significand, p.negativeExponent), nil
}

// Reset returns the parser to its initial state, ready for a new literal.
func (p *Parser[S]) Reset() {
	*p = Parser[S]{}
}
