// Package observable holds a value that pushes every change to its subscribers.
package observable

import "sync"

// Observable is the read side of a Value.
type Observable[T any] interface {
	Get() T
	// Subscribe calls fn with the current value, then with every later one,
	// until the returned function is called.
	Subscribe(fn func(T)) (unsubscribe func())
}

type delivery[T any] struct {
	id    int
	value T
}

// Value delivers notifications from a single queue, in write order.
// A subscriber may write to the Value it listens to; the nested notification
// is queued and delivered once the current one returns.
type Value[T any] struct {
	mu          sync.Mutex
	current     T
	nextID      int
	subscribers map[int]func(T)
	pending     []delivery[T]
	flushing    bool
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:     initial,
		subscribers: make(map[int]func(T)),
	}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set stores value and notifies subscribers.
func (v *Value[T]) Set(value T) {
	v.Stage(value)
	v.Flush()
}

// Stage stores value and queues its notifications without delivering them.
// Callers holding their own lock stage under it and Flush after releasing it.
func (v *Value[T]) Stage(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = value
	for id := range v.subscribers {
		v.pending = append(v.pending, delivery[T]{id: id, value: value})
	}
}

// Flush delivers queued notifications. When another call is already
// delivering, Flush returns at once and that call delivers the queue.
func (v *Value[T]) Flush() {
	v.mu.Lock()
	if v.flushing {
		v.mu.Unlock()
		return
	}
	v.flushing = true

	// a panicking subscriber must not leave the queue stuck
	inCallback := false
	defer func() {
		if inCallback {
			v.mu.Lock()
			v.flushing = false
			v.mu.Unlock()
		}
	}()

	for {
		if len(v.pending) == 0 {
			v.flushing = false
			v.mu.Unlock()
			return
		}
		next := v.pending[0]
		v.pending = v.pending[1:]
		fn, ok := v.subscribers[next.id]
		v.mu.Unlock()

		inCallback = true
		if ok {
			fn(next.value)
		}
		inCallback = false
		v.mu.Lock()
	}
}

func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn
	v.pending = append(v.pending, delivery[T]{id: id, value: v.current})
	v.mu.Unlock()
	v.Flush()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subscribers, id)
			v.mu.Unlock()
		})
	}
}
