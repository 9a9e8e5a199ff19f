package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchFileCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.uml")
	require.NoError(t, os.WriteFile(path, []byte("A\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, func() { calls.Add(1) })
	}()

	// The watcher starts asynchronously; keep writing until a change is seen.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("A\n  + x\n"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
}

func TestWatchFileIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.uml")
	require.NoError(t, os.WriteFile(path, []byte("A\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var calls atomic.Int32
	go func() {
		for ctx.Err() == nil {
			_ = os.WriteFile(filepath.Join(dir, "other.uml"), []byte("B\n"), 0o644)
			time.Sleep(20 * time.Millisecond)
		}
	}()

	require.NoError(t, watchFile(ctx, path, 10*time.Millisecond, func() { calls.Add(1) }))
	require.Zero(t, calls.Load())
}
