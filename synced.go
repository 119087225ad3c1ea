package options

import (
	"slices"

	"github.com/sasha-s/go-deadlock"
)

// Synced guards an Options with a read/write lock so it can be shared
// between goroutines. Pointers into cells never leave the lock: reads copy
// and writes go through callbacks.
type Synced struct {
	mu   deadlock.RWMutex
	opts *Options
}

// NewSynced creates an empty, lock-guarded collection.
func NewSynced(opts ...Option) *Synced {
	return &Synced{opts: New(opts...)}
}

// Set stores value under name, replacing whatever was there before.
func (s *Synced) Set(name string, value any) *Synced {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Set(name, value)
	return s
}

// Has reports whether a value of any type is stored under name.
func (s *Synced) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Has(name)
}

// Delete removes name and reports whether it was present.
func (s *Synced) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Delete(name)
}

// Len returns the number of stored names.
func (s *Synced) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Len()
}

// Names returns a sorted snapshot of the stored names.
func (s *Synced) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(s.opts.Names())
}

// Read runs fn with shared access. fn must work only through the *Options it
// is given: it must not call back into s, modify the collection, or retain
// pointers obtained from it. The lock is not reentrant.
func (s *Synced) Read(fn func(*Options)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.opts)
}

// Write runs fn with exclusive access. fn must work only through the
// *Options it is given and must not call back into s; the lock is not
// reentrant.
func (s *Synced) Write(fn func(*Options)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.opts)
}

// SyncedGet returns a copy of the value stored under name if it has type T.
func SyncedGet[T any](s *Synced, name string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Get[T](s.opts, name)
}

// SyncedUpdate calls fn under the write lock with the value stored under
// name if it has type T. It reports whether fn was called.
func SyncedUpdate[T any](s *Synced, name string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Update(s.opts, name, fn)
}
