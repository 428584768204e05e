package block

import (
	"github.com/calebcase/gcode/decimal"
	"github.com/calebcase/gcode/significand"
)

// Builder receives one callback per element the parser recognizes, in
// input order. It is supplied by the caller on every feed; the parser
// holds no reference to it between calls.
//
// Any error returned from a callback aborts the current feed immediately
// and is surfaced as a KindBuilder parse error. No further callbacks are
// made for that feed.
type Builder[S significand.Significand[S]] interface {
	// ProgramStart is invoked once per program, when its first byte is
	// fed and before any other callback.
	ProgramStart() error

	// SequenceNumber is invoked for a leading N word. The alignment
	// flag is true when the block number was written zero padded
	// (N0010 rather than N10); it is a property of the token's
	// spelling, never of its value.
	SequenceNumber(alignment bool, number decimal.Decimal[S]) error

	// GCode is invoked for a G word.
	GCode(number decimal.Decimal[S]) error

	// MCode is invoked for an M word.
	MCode(number decimal.Decimal[S]) error

	// Data is invoked for every other addressed word. The index is
	// valid only for indexed words such as P2=4.5.
	Data(address byte, index Index[S], number decimal.Decimal[S]) error

	// EndBlock is invoked when the line terminator of a block that
	// produced at least one element is reached.
	EndBlock() error
}

// Index is the optional integer selector of an indexed data word.
type Index[S any] struct {
	Value S
	Valid bool
}
