//go:build !unix && !windows

package cmd

import "os"

func shutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
