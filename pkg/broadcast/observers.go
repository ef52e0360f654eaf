package broadcast

import "sync"

// Observers is a synchronous, ordered observer registry. Notify calls every
// registered handler on the caller's goroutine in registration order.
// The zero value is ready to use.
type Observers[T any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers []observer[T]
}

type observer[T any] struct {
	id uint64
	fn func(T)
}

// Add registers fn and returns a func that removes it. Calling the returned
// func more than once has no effect. A nil fn is ignored.
func (o *Observers[T]) Add(fn func(T)) (remove func()) {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.handlers = append(o.handlers, observer[T]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(id) })
	}
}

// Notify delivers v to a snapshot of the current handlers, so handlers may
// add or remove observers without deadlocking.
func (o *Observers[T]) Notify(v T) {
	o.mu.RLock()
	snapshot := make([]observer[T], len(o.handlers))
	copy(snapshot, o.handlers)
	o.mu.RUnlock()

	for _, h := range snapshot {
		h.fn(v)
	}
}

func (o *Observers[T]) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.handlers)
}

func (o *Observers[T]) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, h := range o.handlers {
		if h.id == id {
			o.handlers = append(o.handlers[:i:i], o.handlers[i+1:]...)
			return
		}
	}
}
