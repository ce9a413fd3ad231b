// Package view holds the client-side state of one page load: a placeholder
// until the backend greeting arrives, then the greeting or a fixed error text.
package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
	"github.com/janisto/hello-fullstack/internal/service/message"
)

const (
	// LoadingText is shown until the fetch resolves.
	LoadingText = "Se încarcă..."
	// ErrorText replaces the message when the fetch fails for any reason.
	ErrorText = "Error in getting message."
)

// State is the lifecycle stage of a View.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateLoaded || s == StateFailed
}

// Snapshot is a consistent read of a View.
type Snapshot struct {
	State State  `json:"state"`
	Text  string `json:"text"`
}

// View fetches the backend greeting at most once and exposes the text to show.
type View struct {
	svc   message.Service
	mount sync.Once
	done  chan struct{}

	mu    sync.RWMutex
	state State
	text  string
}

// New returns a View in the loading state.
func New(svc message.Service) *View {
	return &View{
		svc:   svc,
		done:  make(chan struct{}),
		state: StateLoading,
		text:  LoadingText,
	}
}

// Mount starts the single fetch. Calls after the first are no-ops. The fetch
// outlives ctx cancellation but keeps its logger and values.
func (v *View) Mount(ctx context.Context) {
	v.mount.Do(func() {
		go v.fetch(context.WithoutCancel(ctx))
	})
}

func (v *View) fetch(ctx context.Context) {
	msg, err := v.svc.GetMessage(ctx)
	if err != nil {
		applog.LogError(ctx, "failed to get message", err)
		v.finish(StateFailed, ErrorText)
		return
	}
	applog.LogInfo(ctx, "message received", zap.Int("length", len(msg)))
	v.finish(StateLoaded, msg)
}

func (v *View) finish(state State, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Terminal() {
		return
	}
	v.state = state
	v.text = text
	close(v.done)
}

// Snapshot returns state and text read together.
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Snapshot{State: v.state, Text: v.text}
}

// Text returns the string to display.
func (v *View) Text() string {
	return v.Snapshot().Text
}

// State returns the current lifecycle stage.
func (v *View) State() State {
	return v.Snapshot().State
}

// Done is closed once the view reaches a terminal state.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Wait blocks until the view is terminal or ctx ends, then returns the latest snapshot.
func (v *View) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-v.done:
		return v.Snapshot(), nil
	case <-ctx.Done():
		return v.Snapshot(), ctx.Err()
	}
}
