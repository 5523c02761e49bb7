// internal/game/engine.go
//
// Round state machine for Wordhack.
// Responsibilities:
//   - Create rounds and draw targets uniformly from the dictionary.
//   - Regenerate the option set whenever the target or difficulty changes.
//   - Score selections and append guess/win entries to the log.
//   - Derive chances left, guesses made and won/lost from the log.
//
// Transitions:
//   - Reset:            new random target, empty log, same difficulty.
//   - ResetTo:          as Reset, with a caller-chosen target.
//   - SelectDifficulty: no-op for the active preset, otherwise switch + Reset.
//   - Select:           append a guess or a win; refused once the round is over.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Round states reported by State.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// NewRound constructs a round over dict and draws its first target.
// A nil src falls back to NewSource.
func NewRound(dict []string, diff Difficulty, src Source) *Round {
	if src == nil {
		src = NewSource()
	}
	r := &Round{
		ID:         uuid.NewString(),
		Difficulty: diff,
		dict:       dict,
		src:        src,
	}
	r.Reset()
	return r
}

// Reset draws a fresh target from the full dictionary and clears the log.
// An empty dictionary yields an empty target.
func (r *Round) Reset() {
	target := ""
	if len(r.dict) > 0 {
		target = r.dict[int(r.src.Float64()*float64(len(r.dict)))%len(r.dict)]
	}
	r.Daily = false
	r.ResetTo(target)
}

// ResetTo starts the round over on target.
func (r *Round) ResetTo(target string) {
	r.Target = target
	r.Log = []Entry{}
	r.Options = Sample(r.src, r.dict, r.Target, r.Difficulty)
}

// SelectDifficulty switches to the named preset and resets the round.
// Selecting the active preset changes nothing.
func (r *Round) SelectDifficulty(name string) error {
	if name == r.Difficulty.Name {
		return nil
	}
	d, ok := DifficultyByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	r.Difficulty = d
	r.Reset()
	return nil
}

// Select scores word against the target and appends the resulting entry.
// A selection wins iff its likeness equals the target length.
// Repeated selections are logged separately.
func (r *Round) Select(word string) (Entry, error) {
	if r.Over() {
		return Entry{}, ErrRoundOver
	}
	likeness := Likeness(r.Target, word)
	e := Entry{Kind: KindGuess, Value: word, Likeness: likeness}
	if likeness == len(r.Target) {
		e.Kind = KindWin
	}
	r.Log = append(r.Log, e)
	return e, nil
}

// HasOption reports whether word is in the current option set.
func (r *Round) HasOption(word string) bool {
	for _, o := range r.Options {
		if o == word {
			return true
		}
	}
	return false
}

// ChancesLeft is difficulty.chances minus the log length.
func (r *Round) ChancesLeft() int { return r.Difficulty.Chances - len(r.Log) }

// Guesses counts guess entries (wins excluded).
func (r *Round) Guesses() int {
	n := 0
	for _, e := range r.Log {
		if e.Kind == KindGuess {
			n++
		}
	}
	return n
}

// Won reports whether any win entry exists.
func (r *Round) Won() bool {
	for _, e := range r.Log {
		if e.Kind == KindWin {
			return true
		}
	}
	return false
}

// Lost reports a round with no win and no chances left.
func (r *Round) Lost() bool { return !r.Won() && r.ChancesLeft() <= 0 }

// Over reports whether the round accepts no further selections.
func (r *Round) Over() bool { return r.Won() || r.ChancesLeft() <= 0 }

// State reports a coarse string form of the round state.
func (r *Round) State() string {
	switch {
	case r.Won():
		return StateWon
	case r.Lost():
		return StateLost
	}
	return StatePlaying
}
