package utils

import (
	"context"
	"sync"
)

// Token identifies one operation started by Latest.Begin.
type Token uint64

// Latest tracks the most recent asynchronous operation of a component. Starting a new
// operation cancels the previous one, and only the newest operation may commit its
// result. The zero value is ready to use.
type Latest struct {
	mu     sync.Mutex
	gen    Token
	cancel context.CancelFunc
}

// Begin cancels the operation in flight (if any) and starts a new one whose context is
// derived from parent.
func (l *Latest) Begin(parent context.Context) (context.Context, Token) {
	ctx, cancel := context.WithCancel(parent)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	l.cancel = cancel
	return ctx, l.gen
}

// Commit runs apply only while tok is still the newest operation and reports whether it
// did. apply runs under the tracker lock so a concurrent Begin cannot interleave.
func (l *Latest) Commit(tok Token, apply func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tok != l.gen {
		return false
	}
	apply()
	return true
}

// Current reports whether tok belongs to the newest operation.
func (l *Latest) Current(tok Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return tok == l.gen
}

// Stop cancels the operation in flight and invalidates every issued token. It is the
// teardown hook of the owning component.
func (l *Latest) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
