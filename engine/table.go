package engine

import (
	"sync"
	"unsafe"
)

// sessionTable maps integer Handles to native session pointers so that
// no C pointer escapes this package. Handles are slot indexes offset by
// one, keeping the zero Handle permanently invalid.
type sessionTable struct {
	entries  []sessionEntry
	freeList []Handle
	mu       sync.RWMutex
}

type sessionEntry struct {
	ptr   unsafe.Pointer
	valid bool
}

// insert stores a session pointer and returns its handle.
func (t *sessionTable) insert(ptr unsafe.Pointer) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := sessionEntry{ptr: ptr, valid: true}

	if len(t.freeList) > 0 {
		h := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[h-1] = e
		return h
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// get retrieves a session pointer by handle.
func (t *sessionTable) get(h Handle) (unsafe.Pointer, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.ptr, true
}

// drop removes a session and returns (pointer, true) exactly once per
// inserted handle. The second drop of the same handle finds nothing.
func (t *sessionTable) drop(h Handle) (unsafe.Pointer, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid {
		return nil, false
	}

	ptr := e.ptr
	e.valid = false
	e.ptr = nil
	t.freeList = append(t.freeList, h)

	return ptr, true
}

// len returns the number of live sessions.
func (t *sessionTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}
