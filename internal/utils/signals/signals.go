package signals

import (
	"os"
	"os/signal"
	"syscall"
)

// OnSignal invokes the given function in a new goroutine when the process
// receives an interruption or termination signal.
func OnSignal(fn func(sig os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		fn(<-sigChan)
	}()
}
