package views

import (
	"context"
	"sync"

	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

// State is the lifecycle of a fetched collection.
type State int

const (
	StateLoading State = iota
	StateReady
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// resource holds one fetched collection and the latest-operation guard around it.
type resource[T any] struct {
	latest utils.Latest

	mu    sync.Mutex
	state State
	items []T
	err   error
}

// load runs fetch as the newest operation. It reports false when a newer load or stop
// superseded it, in which case its result was discarded.
func (r *resource[T]) load(ctx context.Context, fetch func(context.Context) ([]T, error)) (bool, error) {
	ctx, tok := r.begin(ctx)
	items, err := fetch(ctx)
	return r.finish(tok, items, err), err
}

// begin starts a new operation and moves the collection to the loading state.
func (r *resource[T]) begin(ctx context.Context) (context.Context, utils.Token) {
	ctx, tok := r.latest.Begin(ctx)
	r.latest.Commit(tok, func() { r.set(StateLoading, nil, nil) })
	return ctx, tok
}

// finish applies the outcome of tok unless a newer operation has started.
func (r *resource[T]) finish(tok utils.Token, items []T, err error) bool {
	return r.latest.Commit(tok, func() {
		switch {
		case err != nil:
			r.set(StateFailed, nil, err)
		case len(items) == 0:
			r.set(StateEmpty, nil, nil)
		default:
			r.set(StateReady, items, nil)
		}
	})
}

func (r *resource[T]) stop() {
	r.latest.Stop()
}

func (r *resource[T]) set(state State, items []T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.items = items
	r.err = err
}

func (r *resource[T]) snapshot() (State, []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.items
}
