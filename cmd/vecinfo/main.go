// Command vecinfo inspects the vector kernels and evaluates small
// vector expressions.
//
// Usage:
//
//	vecinfo [flags]
//
// Without -list it builds the ramp from -from to -to in steps of -by,
// optionally applies -op with operand -arg, and prints the result.
//
// Examples:
//
//	vecinfo -list
//	vecinfo -from 0 -to 5 -by 0.5
//	vecinfo -width 32 -to 100 -op scale -arg 0.25 -max 8
//	vecinfo -to 4 -op div -arg 2 -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/internal/kernel/registry"
	"github.com/cwbudde/algo-vector/vector"
)

var errUsage = errors.New("usage")

var operations = []string{"none", "add", "sub", "mul", "div", "scale"}

type options struct {
	list    bool
	width   int
	from    float64
	to      float64
	by      float64
	op      string
	arg     float64
	max     int
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.list {
		return printKernels(stdout, logger)
	}

	var out string
	switch opts.width {
	case 32:
		out, err = evaluate[float32](opts, logger)
	case 64:
		out, err = evaluate[float64](opts, logger)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vecinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.list, "list", false, "list registered kernels and the selected one")
	fs.IntVar(&opts.width, "width", 64, "element width in bits (32 or 64)")
	fs.Float64Var(&opts.from, "from", 0, "first ramp value")
	fs.Float64Var(&opts.to, "to", 10, "ramp end (exclusive)")
	fs.Float64Var(&opts.by, "by", 1, "ramp step")
	fs.StringVar(&opts.op, "op", "none", "operation applied to the ramp: "+strings.Join(operations, ", "))
	fs.Float64Var(&opts.arg, "arg", 1, "operand: scalar for scale, constant vector for the others")
	fs.IntVar(&opts.max, "max", 25, "maximum number of elements printed")
	fs.BoolVar(&opts.verbose, "v", false, "log kernel selection and evaluation")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Evaluates a ramp expression with the selected vector kernels.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vecinfo -list\n")
		fmt.Fprintf(stderr, "  vecinfo -from 0 -to 5 -by 0.5\n")
		fmt.Fprintf(stderr, "  vecinfo -width 32 -to 100 -op scale -arg 0.25 -max 8\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return opts, errUsage
	}
	if opts.width != 32 && opts.width != 64 {
		return opts, fmt.Errorf("invalid -width %d: must be 32 or 64", opts.width)
	}
	opts.op = strings.ToLower(strings.TrimSpace(opts.op))
	if !slices.Contains(operations, opts.op) {
		return opts, fmt.Errorf("unknown -op %q (want one of %s)", opts.op, strings.Join(operations, ", "))
	}
	return opts, nil
}

// evaluate builds the ramp and applies the operation. Panics raised by the
// vector package for invalid input are returned as errors.
func evaluate[T vector.Float](opts options, logger *slog.Logger) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("evaluate: %w", e)
		}
	}()

	ops := kernel.For[T]()
	logger.Debug("kernel selected", "width", opts.width, "name", ops.Name, "simd", ops.SIMDLevel.String())

	v := vector.RampBy(T(opts.from), T(opts.to), T(opts.by))
	logger.Debug("ramp built", "from", opts.from, "to", opts.to, "by", opts.by, "len", v.Len())

	operand := vector.Ones[T](v.Len())
	operand.ScaleBy(T(opts.arg))

	switch opts.op {
	case "add":
		v.Add(operand)
	case "sub":
		v.Subtract(operand)
	case "mul":
		v.MultiplyBy(operand)
	case "div":
		v.DivideBy(operand)
	case "scale":
		v.ScaleBy(T(opts.arg))
	}
	logger.Debug("operation applied", "op", opts.op, "arg", opts.arg)

	return vector.Format[T](v, vector.WithMaxElements(opts.max)), nil
}

func printKernels(w io.Writer, logger *slog.Logger) error {
	features := cpu.DetectFeatures()
	logger.Debug("cpu features", "arch", features.Architecture, "avx2", features.HasAVX2, "neon", features.HasNEON)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Width\tKernel\tSIMD\tPriority\tSupported\tSelected\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t----\t--------\t---------\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writeRows(tw, 32, registry.Float32, kernel.For[float32](), features); err != nil {
		return err
	}
	if err := writeRows(tw, 64, registry.Float64, kernel.For[float64](), features); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeRows[T registry.Float](w io.Writer, width int, r *registry.OpRegistry[T], selected *registry.OpEntry[T], features cpu.Features) error {
	for _, e := range r.ListEntries() {
		mark := ""
		if e.Name == selected.Name {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\t%s\n",
			width, e.Name, e.SIMDLevel.String(), e.Priority, cpu.Supports(features, e.SIMDLevel), mark); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
