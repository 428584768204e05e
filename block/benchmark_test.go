package block_test

import (
	"strings"
	"testing"

	"github.com/calebcase/gcode/block"
	"github.com/calebcase/gcode/decimal"
	"github.com/calebcase/gcode/significand"
)

type nopBuilder struct{}

func (nopBuilder) ProgramStart() error {
	return nil
}

func (nopBuilder) SequenceNumber(alignment bool, number decimal.Decimal[significand.Int32]) error {
	return nil
}

func (nopBuilder) GCode(number decimal.Decimal[significand.Int32]) error {
	return nil
}

func (nopBuilder) MCode(number decimal.Decimal[significand.Int32]) error {
	return nil
}

func (nopBuilder) Data(address byte, index block.Index[significand.Int32], number decimal.Decimal[significand.Int32]) error {
	return nil
}

func (nopBuilder) EndBlock() error {
	return nil
}

func BenchmarkFeedString(b *testing.B) {
	program := strings.Repeat("N10 G1 X148.452384 Y-8.5 Z0.0010 F1500\n", 64)

	parser := &block.Parser[significand.Int32]{}
	bld := nopBuilder{}

	b.SetBytes(int64(len(program)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := parser.FeedString(program, bld)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFeedStringShift(b *testing.B) {
	program := strings.Repeat("N10 G1 X148.452384 Y-8.5 Z0.0010 F1500\n", 64)

	parser := &block.Parser[significand.ShiftInt32]{}

	b.SetBytes(int64(len(program)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := parser.FeedString(program, shiftNopBuilder{})
		if err != nil {
			b.Fatal(err)
		}
	}
}

type shiftNopBuilder struct{}

func (shiftNopBuilder) ProgramStart() error {
	return nil
}

func (shiftNopBuilder) SequenceNumber(alignment bool, number decimal.Decimal[significand.ShiftInt32]) error {
	return nil
}

func (shiftNopBuilder) GCode(number decimal.Decimal[significand.ShiftInt32]) error {
	return nil
}

func (shiftNopBuilder) MCode(number decimal.Decimal[significand.ShiftInt32]) error {
	return nil
}

func (shiftNopBuilder) Data(address byte, index block.Index[significand.ShiftInt32], number decimal.Decimal[significand.ShiftInt32]) error {
	return nil
}

func (shiftNopBuilder) EndBlock() error {
	return nil
}
