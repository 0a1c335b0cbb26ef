//go:build unix

package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"
)

func TestCreateContext_CancelsOnInterrupt(t *testing.T) {
	// Keeps the test binary alive if the interrupt reaches the default handler
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, syscall.SIGINT)
	defer signal.Stop(guard)

	ctx := createContext()
	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("failed to send interrupt: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGINT")
	}
}
