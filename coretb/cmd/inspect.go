package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/coretb/tracing"
)

func newInspectCmd(stdout io.Writer) *cobra.Command {
	var (
		from        uint64
		limit       int
		illegalOnly bool
	)

	inspectCmd := &cobra.Command{
		Use:   "inspect <trace.sqlite3>",
		Short: "Print the run information and samples of a SQLite trace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectTrace(cmd.Context(), stdout, args[0], tracing.SampleQuery{
				From:        from,
				Limit:       limit,
				IllegalOnly: illegalOnly,
			})
		},
	}

	inspectCmd.Flags().Uint64Var(&from, "from", 0, "first time to print")
	inspectCmd.Flags().IntVar(&limit, "limit", 20,
		"maximum number of samples, 0 for all")
	inspectCmd.Flags().BoolVar(&illegalOnly, "illegal", false,
		"only print samples with the illegal flag raised")

	return inspectCmd
}

func inspectTrace(
	ctx context.Context,
	w io.Writer,
	path string,
	q tracing.SampleQuery,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	trace, err := tracing.OpenSQLiteTrace(path)
	if err != nil {
		return err
	}
	defer trace.Close()

	info, err := trace.RunInfo(ctx)
	if err != nil {
		return err
	}

	for _, i := range info {
		fmt.Fprintf(w, "%-20s %s\n", i.Property+":", i.Value)
	}

	samples, total, err := trace.Samples(ctx, q)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d of %d samples\n", len(samples), total)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Time\tClk\tRst_n\tInstruction\tStatus\tIllegal\t")

	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%d\t%d\t0x%08x\t0x%08x\t%d\t\n",
			s.Time, s.Clock, s.ResetN, s.Instruction, s.Status, s.Illegal)
	}

	return tw.Flush()
}
