package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherCallsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.wav")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, err := New(path, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	w.Start(ctx, func() error {
		calls.Add(1)
		return errors.New("keeps running")
	})

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.wav"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 10*time.Millisecond)

	// a failing callback doesn't stop the loop
	before := calls.Load()
	require.NoError(t, os.WriteFile(path, []byte("changed again"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() > before }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.wav")

	w, err := New(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx, func() error { return nil })
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not return after cancel")
	}

	require.NoError(t, w.Close())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "in.wav"), nil)
	require.Error(t, err)
}
