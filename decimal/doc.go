// Package decimal parses fixed point base 10 literals one byte at a time.
//
// The equation for a decimal number is:
//
//	number = significand * 10 ^ -exponent
//
// Where significand is a sign-inclusive integer and exponent is the
// (non-negative) count of the significand's digits right of the decimal
// point. For example:
//
//	1.23     = 123 * 10^-2
//	-8.5     = -85 * 10^-1
//	0.000025 = 25 * 10^-6
//
// There is no distinction between positive and negative zero: "-0" parses
// to the same value as "0".
//
// # Parsing
//
// Parser is a five state machine fed one byte at a time:
//
//	         +    -
//	start ----------> sign
//	  |    .            |  .
//	  +---------------- | ----> leading-decimal
//	  |    0-9          |                 |
//	  +---------------> integer           | 0-9
//	                      |  .            |
//	                      +--------> fraction
//
// Only integer and fraction accept finalization; ending in any other
// state means no digit was ever seen and yields ErrIncomplete.
//
// The source text is never buffered. Integer digits are appended to the
// significand as they arrive, leading zeros are dropped before they cost
// any arithmetic, and runs of fractional zeros are batched into a single
// counter so that "0.0010" performs exactly one shift-and-append when the
// 1 arrives (at weight 3) and none for the zeros around it.
//
// All arithmetic goes through the significand capability and is checked;
// a literal that does not fit the chosen width fails with ErrCapacity at
// the exact digit that overflows.
package decimal
