package store

import "sync"

// List is an append-only, process-lifetime collection.
type List[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Append(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
}

// All returns a copy of the items in insertion order, never nil.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
