// internal/history/history.go

// Package history is a bounded undo/redo stack over arbitrary snapshots.
package history

import "sync"

// DefaultDepth is the number of snapshots kept when New is given zero.
const DefaultDepth = 50

// Stack keeps up to depth snapshots and a cursor into them. It is safe for
// concurrent use.
type Stack[T any] struct {
	mu      sync.Mutex
	entries []T
	cur     int
	depth   int
}

func New[T any](depth int) *Stack[T] {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Stack[T]{cur: -1, depth: depth}
}

// Push records v as the newest snapshot. Anything ahead of the cursor is
// discarded first; past the depth limit the oldest snapshot is evicted.
func (s *Stack[T]) Push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:s.cur+1], v)
	if len(s.entries) > s.depth {
		var zero T
		s.entries[0] = zero
		s.entries = s.entries[1:]
	}
	s.cur = len(s.entries) - 1
}

// Undo steps back one snapshot and returns it. It reports false when the
// cursor is already at the oldest snapshot.
func (s *Stack[T]) Undo() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur <= 0 {
		var zero T
		return zero, false
	}
	s.cur--
	return s.entries[s.cur], true
}

// Redo steps forward one snapshot and returns it.
func (s *Stack[T]) Redo() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur >= len(s.entries)-1 {
		var zero T
		return zero, false
	}
	s.cur++
	return s.entries[s.cur], true
}

func (s *Stack[T]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur > 0
}

func (s *Stack[T]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur < len(s.entries)-1
}

// Current returns the snapshot under the cursor.
func (s *Stack[T]) Current() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur < 0 {
		var zero T
		return zero, false
	}
	return s.entries[s.cur], true
}

func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.cur = -1
}
