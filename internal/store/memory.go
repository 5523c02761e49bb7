// internal/store/memory.go
//
// In-memory implementation of the round Store.
// Rounds live only as long as the process; there is no cross-session persistence.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update runs its callback under the write lock
//     so a round is never mutated by two requests at once.
//   - Tracks last use per round so idle rounds can be pruned.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nicksheffield/Wordhack/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Update runs fn on the round with exclusive access.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*game.Round) error) error

	// Prune drops rounds unused since before and reports how many.
	Prune(ctx context.Context, before time.Time) int

	// Len reports the number of stored rounds.
	Len() int
}

type entry struct {
	round    *game.Round
	lastUsed time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex // guards rounds
	rounds map[string]*entry
	now    func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = &entry{round: r, lastUsed: m.now()}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	e.lastUsed = m.now()
	return fn(e.round)
}

func (m *memory) Prune(ctx context.Context, before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.rounds {
		if e.lastUsed.Before(before) {
			delete(m.rounds, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
