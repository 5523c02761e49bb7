package store

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/nicksheffield/Wordhack/internal/game"
)

var dict = []string{"ABCDE", "ABXXX", "ZZZZZ", "YYYYY", "XBCXX"}

func newRound() *game.Round {
	return game.NewRound(dict, game.DefaultDifficulty(), rand.New(rand.NewSource(1)))
}

func TestSaveThenUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := newRound()
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var got *game.Round
	if err := s.Update(ctx, r.ID, func(rd *game.Round) error { got = rd; return nil }); err != nil || got != r {
		t.Fatalf("Update() saw %v, %v", got, err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := newRound()
	_ = s.Save(ctx, r)

	err := s.Update(ctx, r.ID, func(r *game.Round) error {
		_, err := r.Select("ZZZZZ")
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(r.Log) != 1 {
		t.Fatalf("log = %+v", r.Log)
	}

	boom := errors.New("boom")
	if err := s.Update(ctx, r.ID, func(*game.Round) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if err := s.Update(ctx, "missing", func(*game.Round) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := newRound()
	_ = s.Save(ctx, r)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, r.ID, func(r *game.Round) error {
				_, err := r.Select("ZZZZZ")
				return err
			})
		}()
	}
	wg.Wait()
	if len(r.Log) != r.Difficulty.Chances {
		t.Fatalf("log length = %d, want %d", len(r.Log), r.Difficulty.Chances)
	}
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore().(*memory)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	old, fresh := newRound(), newRound()
	_ = m.Save(ctx, old)
	clock = clock.Add(time.Hour)
	_ = m.Save(ctx, fresh)

	if n := m.Prune(ctx, clock.Add(-time.Minute)); n != 1 {
		t.Fatalf("Prune() = %d, want 1", n)
	}
	if err := m.Update(ctx, old.ID, func(*game.Round) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old round still present")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}
