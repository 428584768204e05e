package block

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of block parsing errors.
var Error = errs.Class("block")

// Kind classifies block level parse failures.
type Kind uint8

const (
	// KindStructure is an invalid character or a malformed word.
	KindStructure Kind = iota + 1

	// KindNumber wraps a failure from the embedded decimal parser.
	KindNumber

	// KindBuilder wraps an error reported by a builder callback.
	KindBuilder
)

func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindNumber:
		return "number"
	case KindBuilder:
		return "builder"
	}

	return "unknown"
}

// ParseError is a terminal block parse failure. Line and Column locate
// the byte that triggered it, counting from 1. Address is the letter of
// the word being parsed, or 0 when the failure was outside a word.
type ParseError struct {
	Kind    Kind
	Line    int
	Column  int
	Address byte
	Err     error
}

func (e *ParseError) Error() string {
	if e.Address != 0 {
		return fmt.Sprintf("%d:%d: %s: word %c: %v",
			e.Line, e.Column, e.Kind, e.Address, e.Err)
	}

	return fmt.Sprintf("%d:%d: %s: %v", e.Line, e.Column, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
