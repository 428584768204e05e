// Package gcode parses numerically controlled machine instruction text
// into a stream of builder callbacks.
//
// The heavy lifting lives in the subpackages: significand (the checked
// integer capability), decimal (fixed point literal parsing), and block
// (the block tokenizer and the Builder contract). This package adds an
// io.Reader front end for hosted environments; embedded callers feed a
// block.Parser directly.
package gcode

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/gcode/block"
	"github.com/calebcase/gcode/significand"
)

// Error is the class of top level decode errors.
var Error = errs.Class("gcode")

// Decoder drives a block parser from an io.Reader through a fixed
// internal buffer.
type Decoder[S significand.Significand[S]] struct {
	r      io.Reader
	parser block.Parser[S]
	buf    [512]byte
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder[S significand.Significand[S]](r io.Reader) *Decoder[S] {
	return &Decoder[S]{
		r: r,
	}
}

// Decode feeds the entire stream into bld, returning the first parse,
// builder, or read error. Input should end with a line terminator: a
// trailing unterminated word is not flushed.
func (d *Decoder[S]) Decode(bld block.Builder[S]) (err error) {
	defer Error.WrapP(&err)

	var n int

	for {
		n, err = d.r.Read(d.buf[:])
		if n > 0 {
			ferr := d.parser.FeedBytes(d.buf[:n], bld)
			if ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return oops.Trace(err)
		}
	}
}

// Reset discards all parser state. The next Decode begins a new program.
func (d *Decoder[S]) Reset() {
	d.parser.Reset()
}
