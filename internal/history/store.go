// Package history keeps the most recent topic submissions in memory.
package history

import (
	"sync"
	"time"

	"dsa-tutor/internal/domain"
)

// DefaultCapacity is the number of submissions retained.
const DefaultCapacity = 5

// MaxCapacity bounds any configured capacity.
const MaxCapacity = 5

// Store is a bounded FIFO of HistoryEntry. Once full, recording a new entry
// evicts the oldest one. Each method is atomic; entries recorded by
// concurrent requests may still appear in or be evicted from each other's
// views.
type Store struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	start   int
	count   int
	now     func() time.Time
}

// NewStore creates a store holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity and larger values are clamped to
// MaxCapacity.
func NewStore(capacity int) *Store {
	switch {
	case capacity <= 0:
		capacity = DefaultCapacity
	case capacity > MaxCapacity:
		capacity = MaxCapacity
	}
	return &Store{
		entries: make([]domain.HistoryEntry, capacity),
		now:     time.Now,
	}
}

// Record appends a submission and returns its timestamp.
func (s *Store) Record(topic, description string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	entry := domain.HistoryEntry{Topic: topic, Description: description, Date: ts}

	capacity := len(s.entries)
	if s.count < capacity {
		s.entries[(s.start+s.count)%capacity] = entry
		s.count++
		return ts
	}
	// full: overwrite oldest
	s.entries[s.start] = entry
	s.start = (s.start + 1) % capacity
	return ts
}

// Snapshot returns the retained entries, oldest first.
func (s *Store) Snapshot() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked(s.count)
}

// PriorEntries returns every retained entry except the most recently
// recorded one.
func (s *Store) PriorEntries() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return []domain.HistoryEntry{}
	}
	return s.copyLocked(s.count - 1)
}

func (s *Store) copyLocked(n int) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, n)
	capacity := len(s.entries)
	for i := 0; i < n; i++ {
		out[i] = s.entries[(s.start+i)%capacity]
	}
	return out
}
