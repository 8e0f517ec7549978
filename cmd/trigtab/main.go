// Command trigtab prints accuracy tables for the fastmath approximations.
//
// Usage:
//
//	trigtab [flags] [function ...]
//
// Without arguments it measures every known function.
//
// Examples:
//
//	trigtab sin cos
//	trigtab -n 65536 -lo 0 -hi 6.2832 sin
//	trigtab -spectrum -fft 8192 -cycles 101
//	trigtab -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-linmath/fastmath"
	"github.com/cwbudde/algo-linmath/internal/cpu"
	"github.com/cwbudde/algo-linmath/measure/accuracy"
)

type funcEntry struct {
	name string
	unit string // argument unit shown in the table
	run  func(opts []accuracy.Option, n int) (accuracy.Report, error)
}

func sweep(approx, ref func(float32) float32) func([]accuracy.Option, int) (accuracy.Report, error) {
	return func(opts []accuracy.Option, _ int) (accuracy.Report, error) {
		return accuracy.Sweep(approx, ref, opts...)
	}
}

func sinDegRef(d float32) float32 { return math32.Sin(d * math32.Pi / 180) }
func cosDegRef(d float32) float32 { return math32.Cos(d * math32.Pi / 180) }

var registry = []funcEntry{
	{"sin", "rad", sweep(fastmath.Sin, math32.Sin)},
	{"cos", "rad", sweep(fastmath.Cos, math32.Cos)},
	{"sindeg", "deg", sweep(fastmath.SinDeg, sinDegRef)},
	{"cosdeg", "deg", sweep(fastmath.CosDeg, cosDegRef)},
	{"atan2", "y,x", func(opts []accuracy.Option, _ int) (accuracy.Report, error) {
		opts = append(opts, accuracy.WithWrap(2*math.Pi))
		return accuracy.Sweep2(fastmath.Atan2, math32.Atan2, opts...)
	}},
	{"circle", "rad", func(_ []accuracy.Option, n int) (accuracy.Report, error) {
		return accuracy.CircleError(n)
	}},
}

func main() {
	n := flag.Int("n", 4096, "number of evaluation points")
	lo := flag.Float64("lo", math.NaN(), "lower bound of the argument range (default -2π, or -720 for degree functions)")
	hi := flag.Float64("hi", math.NaN(), "upper bound of the argument range (default 2π, or 720 for degree functions)")
	list := flag.Bool("list", false, "list available function names")
	spectrum := flag.Bool("spectrum", false, "measure the spectral purity of a table sine tone")
	fftSize := flag.Int("fft", 4096, "FFT size for -spectrum")
	cycles := flag.Int("cycles", 31, "tone periods per FFT frame for -spectrum")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trigtab [flags] [function ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the error of the table-driven trigonometry against math32.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, measures every function.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  trigtab sin cos\n")
		fmt.Fprintf(os.Stderr, "  trigtab -n 65536 -lo 0 -hi 6.2832 sin\n")
		fmt.Fprintf(os.Stderr, "  trigtab -spectrum -fft 8192 -cycles 101\n")
		fmt.Fprintf(os.Stderr, "  trigtab -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	printHeader(os.Stdout, cpu.Detect())

	if *spectrum {
		if err := printSpectrum(os.Stdout, *fftSize, *cycles); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := resolveEntries(os.Stderr, flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	if err := printTable(os.Stdout, entries, *n, *lo, *hi); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func printHeader(w io.Writer, f cpu.Features) {
	fmt.Fprintf(w, "host: %s\ntable: %d entries\n\n", f, fastmath.SinCount)
}

// resolveEntries maps names to registry entries, warning about unknown
// names on errw. No names selects the whole registry.
func resolveEntries(errw io.Writer, names []string) []funcEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(errw, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// rangeFor fills in the default range for unset bounds.
func rangeFor(e funcEntry, lo, hi float64) (float64, float64) {
	span := 2 * math.Pi
	if e.unit == "deg" {
		span = 720
	}
	if math.IsNaN(lo) {
		lo = -span
	}
	if math.IsNaN(hi) {
		hi = span
	}
	return lo, hi
}

func printTable(w io.Writer, entries []funcEntry, n int, lo, hi float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tUnit\tN\tRange\tMax |err|\tAt\tMean |err|\tRMS\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t----\t-\t-----\t---------\t--\t----------\t---\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		l, h := rangeFor(e, lo, hi)
		opts := []accuracy.Option{accuracy.WithSamples(n), accuracy.WithRange(l, h)}

		rep, err := e.run(opts, n)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		rangeLabel := fmt.Sprintf("[%.4g, %.4g]", l, h)
		at := fmt.Sprintf("%.5g", rep.MaxAbsAt.X)
		if e.name == "circle" {
			rangeLabel = "[0, 2π)"
		}
		if e.name == "atan2" {
			at = fmt.Sprintf("(%.4g, %.4g)", rep.MaxAbsAt.Y, rep.MaxAbsAt.X)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.3e\t%s\t%.3e\t%.3e\n",
			e.name, e.unit, rep.N, rangeLabel, rep.MaxAbs, at, rep.MeanAbs, rep.RMS,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func printSpectrum(w io.Writer, fftSize, cycles int) error {
	p, err := accuracy.SpectralPurity(fftSize, cycles)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FFT size\tCycles\tSFDR [dB]\tSpur bin\n")
	fmt.Fprintf(tw, "--------\t------\t---------\t--------\n")
	fmt.Fprintf(tw, "%d\t%d\t%.2f\t%d\n", p.FFTSize, p.Cycles, p.SFDR, p.SpurBin)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
