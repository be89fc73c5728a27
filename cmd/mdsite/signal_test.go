//go:build !windows

package main

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestNotifyContext_CancelsOnSignal(t *testing.T) {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("sending SIGTERM: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not canceled after SIGTERM")
	}
}

func TestNotifyContext_Stop(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(context.Background())
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop should cancel the context")
	}
}
