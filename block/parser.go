package block

import (
	"fmt"

	"github.com/calebcase/oops"

	"github.com/calebcase/gcode/decimal"
	"github.com/calebcase/gcode/significand"
)

type state uint8

const (
	// stateBlock is the start of a block. Block delete and sequence
	// numbers are recognized only here.
	stateBlock state = iota

	// stateWord is between words inside a block.
	stateWord

	// stateSequence is inside the literal of an N word.
	stateSequence

	// stateNumber is inside the first literal of an addressed word;
	// the literal becomes the word's index if '=' follows it.
	stateNumber

	// stateValue is inside the literal after the '=' of an indexed
	// word.
	stateValue

	// stateChecksum is inside the digits of a *nnn trailer.
	stateChecksum

	// stateComment is inside an inline (...) comment.
	stateComment

	// stateSkip discards everything up to the end of the line.
	stateSkip
)

// Parser turns a stream of G-code blocks into Builder callbacks. The zero
// value is ready to use and one instance parses arbitrarily many blocks.
//
// Input may be fed in any chunking: byte by byte, string by string, or
// mixed, with identical results. After an error the parser should be
// Reset, or fed again only from a clean block boundary.
type Parser[S significand.Significand[S]] struct {
	state state
	ret   state // state to resume after an inline comment

	num  decimal.Parser[S]
	word byte // address letter of the word being parsed

	index Index[S] // pending index once '=' was seen

	alignment bool // sequence literal began with a zero digit
	litSeen   bool // first non-sign byte of the sequence literal seen

	started     bool // ProgramStart was emitted
	inBlock     bool // current block produced at least one element
	blockDelete bool // leading '/' was consumed
	checksummed bool // *nnn trailer was consumed

	line int
	col  int
}

// Feed consumes one byte, invoking bld for every element the byte
// completes.
func (p *Parser[S]) Feed(c byte, bld Builder[S]) error {
	if p.line == 0 {
		p.line = 1
	}
	p.col++

	if !p.started {
		p.started = true

		err := bld.ProgramStart()
		if err != nil {
			return p.fail(KindBuilder, err)
		}
	}

	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}

	// A byte that terminates a word is consumed again in the state the
	// word left behind.
	for {
		again, err := p.step(c, bld)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if c == '\n' {
		p.line++
		p.col = 0
	}

	return nil
}

// FeedString consumes the bytes of s in order.
func (p *Parser[S]) FeedString(s string, bld Builder[S]) (err error) {
	for i := 0; i < len(s); i++ {
		err = p.Feed(s[i], bld)
		if err != nil {
			return err
		}
	}

	return nil
}

// FeedBytes consumes data in order.
func (p *Parser[S]) FeedBytes(data []byte, bld Builder[S]) (err error) {
	for _, c := range data {
		err = p.Feed(c, bld)
		if err != nil {
			return err
		}
	}

	return nil
}

// Reset discards all state. The next byte fed begins a new program.
func (p *Parser[S]) Reset() {
	*p = Parser[S]{}
}

// step consumes c in the current state. It reports true when c
// terminated a word and must be consumed again in the new state.
func (p *Parser[S]) step(c byte, bld Builder[S]) (again bool, err error) {
	switch p.state {
	case stateBlock, stateWord:
		return false, p.stepWord(c, bld)

	case stateSequence:
		if isLiteral(c) {
			if !p.litSeen && c != '+' && c != '-' {
				p.litSeen = true
				p.alignment = c == '0'
			}

			err = p.num.Feed(c)
			if err != nil {
				return false, p.fail(KindNumber, err)
			}

			return false, nil
		}

		number, err := p.num.End()
		if err != nil {
			return false, p.fail(KindNumber, err)
		}

		p.state = stateWord
		p.inBlock = true

		err = bld.SequenceNumber(p.alignment, number)
		if err != nil {
			return false, p.fail(KindBuilder, err)
		}

		p.word = 0

		return true, nil

	case stateNumber:
		if isLiteral(c) {
			err = p.num.Feed(c)
			if err != nil {
				return false, p.fail(KindNumber, err)
			}

			return false, nil
		}

		if c == '=' {
			if p.word == 'G' || p.word == 'M' {
				return false, p.failf(KindStructure,
					"index not allowed on %c word", p.word)
			}

			number, err := p.num.End()
			if err != nil {
				return false, p.fail(KindNumber, err)
			}

			if number.NegativeExponent() != 0 {
				return false, p.fail(KindStructure,
					oops.New("index must be an integer"))
			}

			p.index = Index[S]{Value: number.Significand(), Valid: true}
			p.num.Reset()
			p.state = stateValue

			return false, nil
		}

		number, err := p.num.End()
		if err != nil {
			return false, p.fail(KindNumber, err)
		}

		p.state = stateWord
		p.inBlock = true

		switch p.word {
		case 'G':
			err = bld.GCode(number)
		case 'M':
			err = bld.MCode(number)
		default:
			err = bld.Data(p.word, Index[S]{}, number)
		}
		if err != nil {
			return false, p.fail(KindBuilder, err)
		}

		p.word = 0

		return true, nil

	case stateValue:
		if isLiteral(c) {
			err = p.num.Feed(c)
			if err != nil {
				return false, p.fail(KindNumber, err)
			}

			return false, nil
		}

		if c == '=' {
			return false, p.fail(KindStructure,
				oops.New("word already has an index"))
		}

		number, err := p.num.End()
		if err != nil {
			return false, p.fail(KindNumber, err)
		}

		p.state = stateWord
		p.inBlock = true

		err = bld.Data(p.word, p.index, number)
		if err != nil {
			return false, p.fail(KindBuilder, err)
		}

		p.word = 0
		p.index = Index[S]{}

		return true, nil

	case stateChecksum:
		if c >= '0' && c <= '9' {
			err = p.num.Feed(c)
			if err != nil {
				return false, p.fail(KindNumber, err)
			}

			return false, nil
		}

		// The checksum value is parsed and discarded.
		_, err = p.num.End()
		if err != nil {
			return false, p.fail(KindNumber, err)
		}

		p.checksummed = true
		p.word = 0
		p.state = stateWord

		return true, nil

	case stateComment:
		switch c {
		case ')':
			p.state = p.ret
		case '\n':
			return false, p.fail(KindStructure,
				oops.New("inline comment reaches end of line"))
		}

		return false, nil

	case stateSkip:
		if c == '\n' {
			p.state = stateWord

			return true, nil
		}

		return false, nil
	}

	return false, p.failf(KindStructure, "unknown state %d", p.state)
}

// stepWord consumes c between words (stateBlock or stateWord).
func (p *Parser[S]) stepWord(c byte, bld Builder[S]) error {
	switch {
	case c == ' ' || c == '\t' || c == '\r':
	case c == '\n':
		p.state = stateBlock
		p.blockDelete = false
		p.checksummed = false

		// An empty block never reached the builder, so it has no end
		// either. State is reset first so that a builder error from
		// EndBlock still leaves the parser on a clean block boundary.
		if p.inBlock {
			p.inBlock = false

			err := bld.EndBlock()
			if err != nil {
				return p.fail(KindBuilder, err)
			}
		}
	case c == ';' || c == '%':
		p.state = stateSkip
	case c == '(':
		p.ret = p.state
		p.state = stateComment
	case c == '*':
		if p.checksummed {
			return p.fail(KindStructure,
				oops.New("multiple checksums"))
		}

		p.word = '*'
		p.num.Reset()
		p.state = stateChecksum
	case c == '/':
		if p.state != stateBlock || p.blockDelete {
			return p.fail(KindStructure,
				oops.New("block delete must lead the block"))
		}

		p.blockDelete = true
	case c >= 'A' && c <= 'Z':
		if p.checksummed {
			return p.fail(KindStructure,
				oops.New("checksum must end the block"))
		}

		if c == 'N' {
			if p.state != stateBlock {
				return p.fail(KindStructure,
					oops.New("sequence number must lead the block"))
			}

			p.word = 'N'
			p.num.Reset()
			p.alignment = false
			p.litSeen = false
			p.state = stateSequence

			return nil
		}

		p.word = c
		p.num.Reset()
		p.index = Index[S]{}
		p.state = stateNumber
	default:
		return p.failf(KindStructure, "unexpected character %q", c)
	}

	return nil
}

func isLiteral(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (p *Parser[S]) failf(kind Kind, format string, args ...interface{}) error {
	return p.fail(kind, fmt.Errorf(format, args...))
}

func (p *Parser[S]) fail(kind Kind, err error) error {
	return Error.Wrap(&ParseError{
		Kind:    kind,
		Line:    p.line,
		Column:  p.col,
		Address: p.word,
		Err:     err,
	})
}
