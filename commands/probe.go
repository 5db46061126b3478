package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/penwyp/go-log-grapher/internal/core/timeline"
	"github.com/penwyp/go-log-grapher/internal/util"
	"github.com/spf13/cobra"
)

func newProbeCmd(opts *renderOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <time-ms> [file|-]",
		Short: "List the intervals running at a point in time",
		Long: `Prints every interval whose start <= time <= end, with how far into the interval
the time falls and how much of it remains. Names passed with --hide are skipped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(at) || math.IsInf(at, 0) {
				return fmt.Errorf("invalid time %q", args[0])
			}

			tl, err := opts.loadTimeline(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			spans := timeline.Probe(tl, at, opts.hidden)

			var b strings.Builder
			fmt.Fprintf(&b, "Time: %dms\n", int64(math.Round(at)))
			if len(spans) == 0 {
				b.WriteString("No spans at this time\n")
			}
			for _, span := range spans {
				iv := span.Interval
				fmt.Fprintf(&b, "%s: %dms into span (%s), %dms remaining, start %d end %d\n",
					iv.DisplayName,
					int64(math.Round(span.Elapsed)),
					util.FormatPercent(span.Fraction),
					int64(math.Round(span.Remaining)),
					iv.Start, iv.End)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
