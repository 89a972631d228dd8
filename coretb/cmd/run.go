package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/core/luacore"
	"github.com/sarchlab/coretb/core/refcore"
	"github.com/sarchlab/coretb/driver"
	"github.com/sarchlab/coretb/mem/imem"
	"github.com/sarchlab/coretb/sim/id"
	"github.com/sarchlab/coretb/tracing"
)

type runOptions struct {
	memory         string
	trace          string
	traceFormat    string
	core           string
	script         string
	maxCycles      uint64
	reportInterval uint64
	lenient        bool
	stopOnHalt     bool
	verbose        bool
	color          string
}

var runFlags = []string{
	"memory", "trace", "trace-format", "core", "script", "max-cycles",
	"report-interval", "lenient", "stop-on-halt", "verbose", "color",
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := runOptions{}
	cfg := driver.DefaultConfig()

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a program and run the core until the cycle bound.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnv(cmd, runFlags...); err != nil {
				return err
			}

			return runSimulation(opts, stdout, stderr)
		},
	}

	f := runCmd.Flags()
	f.StringVar(&opts.memory, "memory", "../memory.mem",
		"instruction memory file, one hex word per line")
	f.StringVar(&opts.trace, "trace", "waves/scalar_core",
		"trace path; the format's extension is appended")
	f.StringVar(&opts.traceFormat, "trace-format", string(tracing.FormatSQLite),
		"trace format: sqlite, csv, vcd or none")
	f.StringVar(&opts.core, "core", "ref", "core model: ref or lua")
	f.StringVar(&opts.script, "script", "", "Lua script of the lua core")
	f.Uint64Var(&opts.maxCycles, "max-cycles", cfg.MaxCycles,
		"number of cycles to run after reset")
	f.Uint64Var(&opts.reportInterval, "report-interval", cfg.ReportInterval,
		"cycles between status lines, 0 to disable")
	f.BoolVar(&opts.lenient, "lenient", false,
		"load malformed lines as best-effort values instead of failing")
	f.BoolVar(&opts.stopOnHalt, "stop-on-halt", false,
		"end the run when the core raises its halt output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false,
		"log every evaluation to stderr")
	f.StringVar(&opts.color, "color", "auto",
		"highlight illegal cycles: auto, always or never")

	return runCmd
}

func runSimulation(opts runOptions, stdout, stderr io.Writer) error {
	format, err := tracing.ParseFormat(opts.traceFormat)
	if err != nil {
		return err
	}

	loadOpts := []imem.Option{
		imem.WithLogger(log.New(stdout, "", 0)),
		imem.WithWarningLogger(log.New(stderr, "", 0)),
	}
	if opts.lenient {
		loadOpts = append(loadOpts, imem.WithLenientParsing())
	}

	memory, err := imem.LoadFile(opts.memory, loadOpts...)
	if err != nil {
		return errors.WithMessage(err, "failed to load memory file")
	}

	fmt.Fprintln(stdout)

	c, release, err := newCore(opts)
	if err != nil {
		return err
	}
	defer release()

	sink, err := tracing.NewSink(format)
	if err != nil {
		return err
	}

	cfg := driver.DefaultConfig()
	cfg.MaxCycles = opts.maxCycles
	cfg.ReportInterval = opts.reportInterval
	cfg.StopOnHalt = opts.stopOnHalt

	tracePath := tracePathFor(opts.trace, format)

	d, err := driver.MakeBuilder().
		WithCore(c).
		WithSink(sink).
		WithMemory(memory).
		WithConfig(cfg).
		WithTracePath(tracePath).
		WithRunID(id.RunID()).
		WithReportWriter(stdout).
		Build()
	if err != nil {
		return err
	}

	color, err := useColor(opts.color, stdout)
	if err != nil {
		return err
	}

	d.AcceptHook(driver.NewStatusReporter(stdout, cfg.ReportInterval).
		WithColor(color))

	if opts.verbose {
		d.Sequencer().AcceptHook(driver.NewEvalLogger(log.New(stderr, "", 0)))
	}

	report, err := d.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Simulated %d clock cycles in %d time units\n",
		report.ClockCycles, report.SimTime)

	if report.IllegalCycles > 0 {
		fmt.Fprintf(stderr, "%d of %d cycles raised the illegal flag\n",
			report.IllegalCycles, report.CyclesExecuted)
	}

	if report.Halted {
		fmt.Fprintf(stderr, "Core halted at cycle %d\n", report.CyclesExecuted)
	}

	if format != tracing.FormatNone {
		fmt.Fprintf(stderr, "Trace written to %s (%d samples)\n",
			tracePath, report.Samples)
	}

	return nil
}

func newCore(opts runOptions) (core.CoreUnderTest, func(), error) {
	switch opts.core {
	case "ref":
		return refcore.New(), func() {}, nil
	case "lua":
		if opts.script == "" {
			return nil, nil, errors.New("the lua core needs --script")
		}

		c, err := luacore.LoadFile(opts.script)
		if err != nil {
			return nil, nil, err
		}

		return c, c.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown core %q", opts.core)
	}
}

func tracePathFor(base string, format tracing.Format) string {
	ext := format.Extension()
	if ext == "" || strings.HasSuffix(base, ext) {
		return base
	}

	return base + ext
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, errors.Errorf("unknown color mode %q", mode)
	}
}
