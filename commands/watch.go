package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-log-grapher/internal/presentation/display"
	"github.com/penwyp/go-log-grapher/internal/util"
	"github.com/penwyp/go-log-grapher/internal/watch"
	"github.com/spf13/cobra"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd(opts *renderOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Redraw the timeline whenever the log file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return opts.watch(ctx, cmd, args[0])
		},
	}
}

func (o *renderOptions) watch(ctx context.Context, cmd *cobra.Command, path string) error {
	path = expandPath(path)
	fw, err := watch.NewFileWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Close()

	resize, stopResize := resizeSignals()
	defer stopResize()

	out := cmd.OutOrStdout()
	screen := display.NewScreen(out)
	if display.IsTerminal(out) {
		screen.EnterAlternateScreen()
		defer screen.ExitAlternateScreen()
	}

	last := o.redraw(cmd, screen, path)

	// Writers often append in several syscalls, so changes are batched. The timer is
	// armed by the first change only, so a file written continuously still redraws at
	// least once per interval.
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("Log changed: %s %s", ev.Path, ev.Operation)
			if debounce == nil {
				debounce = time.After(watchDebounce)
			}
		case <-resize:
			last = o.redraw(cmd, screen, path)
		case <-debounce:
			debounce = nil
			fp, err := watch.Fingerprint(path)
			if err == nil && fp == last {
				util.LogDebugf("Content unchanged, skipping redraw: %s", path)
				continue
			}
			last = o.redraw(cmd, screen, path)
		}
	}
}

// redraw renders the current file as one frame and returns its fingerprint. Errors
// are shown in place of the chart since the file is often mid-write.
func (o *renderOptions) redraw(cmd *cobra.Command, screen *display.Screen, path string) string {
	fp, _ := watch.Fingerprint(path)

	var frame bytes.Buffer
	tl, err := o.loadTimeline(cmd.InOrStdin(), []string{path})
	if err == nil {
		err = o.render(cmd, &frame, tl)
	}
	if err != nil {
		fmt.Fprintln(&frame, err.Error())
	}
	fmt.Fprintf(&frame, "\nWatching %s (updated %s), Ctrl+C to exit\n", path, time.Now().Format("15:04:05"))

	if err := screen.Draw(frame.String()); err != nil {
		util.LogWarnf("Failed to draw frame: %v", err)
	}
	return fp
}
