package shutdown

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksRunNewestFirst(t *testing.T) {
	t.Parallel()

	h := NewHandler(t.Context())
	defer h.Stop()

	var order []int

	h.BeforeShutdown(func() {
		order = append(order, 1)
	})

	h.BeforeShutdown(func() {
		require.NoError(t, h.Context().Err(), "context must be alive while hooks run")

		order = append(order, 2)
	})

	h.Shutdown()
	h.Shutdown()

	require.Error(t, h.Context().Err())
	assert.Equal(t, []int{2, 1}, order)
}

func TestStopSkipsHooks(t *testing.T) {
	t.Parallel()

	h := NewHandler(t.Context())

	called := false

	h.BeforeShutdown(func() {
		called = true
	})

	h.Stop()
	h.Shutdown()

	require.Error(t, h.Context().Err())
	assert.False(t, called)
}

func TestSignal(t *testing.T) {
	t.Parallel()

	h := NewHandler(t.Context())
	defer h.Stop()

	hookCalled := make(chan struct{})

	h.BeforeShutdown(func() {
		close(hookCalled)
	})

	h.signals <- syscall.SIGTERM

	select {
	case <-h.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after signal")
	}

	select {
	case <-hookCalled:
	default:
		t.Fatal("hook did not run before cancellation")
	}
}
