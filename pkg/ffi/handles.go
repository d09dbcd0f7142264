package ffi

import (
	"sync"
)

// handleTable maps opaque integer handles to live objects. Handles are
// never reused within a process run and 0 is never issued, so a stale or
// null handle always misses.
type handleTable struct {
	mu   sync.Mutex
	next uintptr
	live map[uintptr]any
}

func newHandleTable() *handleTable {
	return &handleTable{live: make(map[uintptr]any)}
}

func (t *handleTable) put(v any) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.live[t.next] = v
	return t.next
}

func (t *handleTable) get(h uintptr) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.live[h]
	return v, ok
}

func (t *handleTable) del(h uintptr) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.live[h]; !ok {
		return false
	}
	delete(t.live, h)
	return true
}

func (t *handleTable) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}
