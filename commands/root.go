package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-log-grapher/internal/config"
	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/core/timeline"
	"github.com/penwyp/go-log-grapher/internal/data/parser"
	"github.com/penwyp/go-log-grapher/internal/order"
	"github.com/penwyp/go-log-grapher/internal/presentation/formatter"
	"github.com/penwyp/go-log-grapher/internal/util"
	"github.com/spf13/cobra"
)

// renderOptions collects the flags shared by commands that draw a timeline.
type renderOptions struct {
	debug      bool
	configPath string

	output     string
	orderNames []string
	orderFile  string
	showGaps   bool
	from       int64
	to         int64
	hidden     []string
	width      int
	noColor    bool

	cfg config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &renderOptions{}

	rootCmd := &cobra.Command{
		Use:   "go-log-grapher [file|-]",
		Short: "Draw start/end event logs as a Gantt timeline",
		Long: `go-log-grapher reads logs made of "<name> start: <ms>" and "<name> end: <ms>" lines,
pairs them into intervals and draws them as a timeline.

Text before a "!!!" marker is ignored, and a trailing " ms" is accepted. Repeated task
names become "name 2", "name 3", ... in the order they complete.

Examples:
  go-log-grapher build.log                       # Chart in the terminal
  cat build.log | go-log-grapher --gaps          # Read stdin, label gaps and overlaps
  go-log-grapher build.log -o json               # Machine readable timeline
  go-log-grapher build.log --order link --order compile
  go-log-grapher build.log --from 1200 --to 1800 # Zoom into a time window`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := opts.loadTimeline(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return opts.render(cmd, cmd.OutOrStdout(), tl)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Config file (default $XDG_CONFIG_HOME/go-log-grapher/config.toml)")
	opts.addRenderFlags(rootCmd)

	rootCmd.AddCommand(
		newProbeCmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *renderOptions) addRenderFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.output, "output", "o", "chart",
		"Output format (chart, table, json, csv, summary)")
	flags.StringArrayVar(&o.orderNames, "order", nil,
		"Display name to place first; repeat to give an order")
	flags.StringVar(&o.orderFile, "order-file", "",
		"File with display names, one per line or as a JSON array")
	flags.BoolVarP(&o.showGaps, "gaps", "g", false,
		"Show gap and overlap labels")
	flags.Int64Var(&o.from, "from", 0,
		"Start of the displayed window in ms (default: earliest start)")
	flags.Int64Var(&o.to, "to", 0,
		"End of the displayed window in ms (default: latest end)")
	flags.StringArrayVar(&o.hidden, "hide", nil,
		"Display name to leave out; repeatable")
	flags.IntVarP(&o.width, "width", "w", 0,
		"Chart width in columns (default: terminal width)")
	flags.BoolVar(&o.noColor, "no-color", false,
		"Disable coloured bars")
}

// setup loads the config file, fills flags the user did not set, and starts logging.
func (o *renderOptions) setup(cmd *cobra.Command) error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.LoadFrom(expandPath(o.configPath))
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("output") && o.cfg.Display.Output != "" {
		o.output = o.cfg.Display.Output
	}
	if !flags.Changed("gaps") {
		o.showGaps = o.cfg.Display.ShowGaps
	}
	if !flags.Changed("width") && o.cfg.Display.ChartWidth > 0 {
		o.width = o.cfg.Display.ChartWidth
	}
	if !flags.Changed("no-color") {
		o.noColor = !o.cfg.Display.Color
	}
	if !flags.Changed("order-file") && o.cfg.Order.File != "" {
		o.orderFile = o.cfg.Order.File
	}

	logLevel := o.cfg.General.LogLevel
	if o.debug {
		logLevel = "debug"
	}
	logFile := o.cfg.General.LogFile
	if logFile != "" {
		logFile = expandPath(logFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return util.InitLogger(logLevel, logFile, util.LogFormat(o.cfg.General.LogFormat))
}

// loadTimeline parses the log named by args (stdin for none or "-") and resolves it
// with the configured display order.
func (o *renderOptions) loadTimeline(stdin io.Reader, args []string) (*model.Timeline, error) {
	p := parser.NewParser()

	var (
		groups *model.TaskGroup
		err    error
		source = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		groups, err = p.ParseReader(stdin)
	} else {
		source = args[0]
		groups, err = p.ParseFile(expandPath(args[0]))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	displayOrder, err := o.displayOrder()
	if err != nil {
		return nil, err
	}

	tl, err := timeline.Resolve(groups, displayOrder)
	if err != nil {
		if errors.Is(err, model.ErrEmptyTimeline) {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return nil, err
	}
	return tl, nil
}

func (o *renderOptions) displayOrder() ([]string, error) {
	var fromFile []string
	if o.orderFile != "" {
		names, err := order.LoadFile(expandPath(o.orderFile))
		if err != nil {
			return nil, err
		}
		fromFile = names
	}
	// Names given on the command line win over the file.
	return order.Merge(o.orderNames, fromFile), nil
}

func (o *renderOptions) render(cmd *cobra.Command, w io.Writer, tl *model.Timeline) error {
	var from, to *int64
	if cmd.Flags().Changed("from") {
		from = &o.from
	}
	if cmd.Flags().Changed("to") {
		to = &o.to
	}
	window, err := timeline.Window(tl, from, to)
	if err != nil {
		return err
	}

	report := formatter.NewReport(tl)
	report.Hide(o.hidden)
	report.Window = window
	report.ShowGaps = o.showGaps

	f, err := formatter.NewFormatter(o.output, formatter.Options{Width: o.width, Color: !o.noColor})
	if err != nil {
		return err
	}
	return f.Format(w, report)
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
