// Package lifecycle ties background work to the lifetime of a screen.
package lifecycle

import (
	"context"
	"sync"
)

// Scope runs operations in goroutines that are cancelled together on Close.
// State writes go through Commit, which refuses them once the scope is closed.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

// Launch starts fn in its own goroutine. It returns false when the scope is already closed.
func (s *Scope) Launch(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
	return true
}

// Commit applies fn unless the scope is closed or its context is done.
// fn runs without the scope lock held, so it may commit again. Close waits
// for running commits; fn must not call Close.
func (s *Scope) Commit(fn func()) bool {
	s.mu.Lock()
	if s.closed || s.ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	fn()
	return true
}

// Wait blocks until every launched operation and running commit has returned.
func (s *Scope) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight operations and waits for them.
func (s *Scope) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}
