//go:build windows

package cmd

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

func shutdownSignals() []os.Signal {
	// os/signal понимает только syscall.Signal
	return []os.Signal{os.Interrupt, syscall.Signal(windows.SIGTERM)}
}
