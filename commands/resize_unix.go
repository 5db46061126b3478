//go:build unix

package commands

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// resizeSignals delivers terminal resize notifications.
func resizeSignals() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	return ch, func() { signal.Stop(ch) }
}
