// Package shutdown cancels a context when the process is asked to stop.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler turns SIGINT and SIGTERM into context cancellation. Hooks
// registered with BeforeShutdown run, newest first, before the context is
// cancelled.
type Handler struct {
	mut     sync.Mutex
	hooks   []func()
	signals chan os.Signal
	ctx     context.Context //nolint:containedctx
	cancel  context.CancelFunc
	once    sync.Once
}

// NewHandler starts listening for signals. Call Stop to release them.
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)

	h := &Handler{
		signals: make(chan os.Signal, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	go h.wait()

	return h
}

// Context is cancelled once shutdown begins.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// BeforeShutdown registers a function to run before the context is
// cancelled. The context is still alive while hooks run.
func (h *Handler) BeforeShutdown(hook func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, hook)
}

// Shutdown starts the shutdown process as if a signal had arrived.
func (h *Handler) Shutdown() {
	h.once.Do(h.run)
}

// Stop releases the signal handler and cancels the context without running
// any hooks.
func (h *Handler) Stop() {
	signal.Stop(h.signals)
	h.once.Do(h.cancel)
}

func (h *Handler) wait() {
	select {
	case sig := <-h.signals:
		slog.Warn("Received " + sig.String() + ", shutting down...")
		h.Shutdown()
	case <-h.ctx.Done():
	}
}

func (h *Handler) run() {
	h.mut.Lock()
	hooks := h.hooks
	h.hooks = nil
	h.mut.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}

	h.cancel()
}
