//go:build !unix

package commands

import "os"

func resizeSignals() (<-chan os.Signal, func()) {
	return nil, func() {}
}
