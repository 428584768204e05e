// Command gcode parses G-code files and reports every element found.
//
// It is a demonstration and throughput harness for the library: each
// builder callback is logged (or, with -q, only counted), and totals are
// reported per input.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/calebcase/gcode"
	"github.com/calebcase/gcode/block"
	"github.com/calebcase/gcode/decimal"
	"github.com/calebcase/gcode/significand"
)

// CLI is the top-level command-line interface.
type CLI struct {
	Quiet bool     `help:"Only report totals." short:"q"`
	Paths []string `arg:"" optional:"" help:"Input file(s); stdin when omitted." type:"existingfile"`
}

func main() {
	var cli CLI

	ktx := kong.Parse(&cli,
		kong.Name("gcode"),
		kong.Description("Parse G-code and report every element found."),
		kong.UsageOnError(),
	)

	ktx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(cli.Paths) == 0 {
		return parse(log, cli.Quiet, "-", os.Stdin)
	}

	for _, path := range cli.Paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		err = parse(log, cli.Quiet, path, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func parse(log *slog.Logger, quiet bool, name string, r io.Reader) error {
	t := &tracer{log: log, quiet: quiet}
	d := gcode.NewDecoder[significand.Int32](r)

	start := time.Now()

	err := d.Decode(t)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	log.Info("done",
		slog.String("input", name),
		slog.Uint64("blocks", t.blocks),
		slog.Uint64("words", t.words),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// tracer is a Builder that logs every callback and counts blocks and
// words.
type tracer struct {
	log   *slog.Logger
	quiet bool

	blocks uint64
	words  uint64
}

func number(d decimal.Decimal[significand.Int32]) slog.Attr {
	return slog.Group("number",
		slog.Int64("significand", int64(d.Significand())),
		slog.Uint64("exponent", uint64(d.NegativeExponent())),
	)
}

func (t *tracer) ProgramStart() error {
	if !t.quiet {
		t.log.Info("program start")
	}

	return nil
}

func (t *tracer) SequenceNumber(alignment bool, n decimal.Decimal[significand.Int32]) error {
	t.words++
	if !t.quiet {
		t.log.Info("sequence number",
			slog.Bool("alignment", alignment),
			number(n),
		)
	}

	return nil
}

func (t *tracer) GCode(n decimal.Decimal[significand.Int32]) error {
	t.words++
	if !t.quiet {
		t.log.Info("g code", number(n))
	}

	return nil
}

func (t *tracer) MCode(n decimal.Decimal[significand.Int32]) error {
	t.words++
	if !t.quiet {
		t.log.Info("m code", number(n))
	}

	return nil
}

func (t *tracer) Data(address byte, index block.Index[significand.Int32], n decimal.Decimal[significand.Int32]) error {
	t.words++
	if !t.quiet {
		attrs := []any{
			slog.String("address", string(rune(address))),
			number(n),
		}
		if index.Valid {
			attrs = append(attrs, slog.Int64("index", int64(index.Value)))
		}

		t.log.Info("data word", attrs...)
	}

	return nil
}

func (t *tracer) EndBlock() error {
	t.blocks++
	if !t.quiet {
		t.log.Info("end block")
	}

	return nil
}
