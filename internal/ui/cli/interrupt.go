package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// SafeInterrupt returns a context cancelled on SigInt (Ctrl+C) or SigTerm.
// If the program hasn't exited gracePeriod after the signal, the terminal colors are reset and it exits.
func SafeInterrupt(ctx context.Context, gracePeriod time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigChan:
			fmt.Println()
			klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
			cancel()
		case <-ctx.Done():
			signal.Stop(sigChan)
			return
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
	return ctx, cancel
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}
