// internal/game/types.go
//
// Core type definitions for the Wordhack game.
// Defines:
//   - Difficulty: named preset of chances, option count and related-option range.
//   - EntryKind / Entry: one line of the round log (guess or win).
//   - Round: state for a single in-progress or finished round.

package game

import "errors"

var (
	// ErrRoundOver is returned by Select once the round is won or out of chances.
	ErrRoundOver = errors.New("round over")
	// ErrUnknownDifficulty is returned when a preset name does not exist.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Difficulty is a named bundle of game parameters.
type Difficulty struct {
	Name            string `json:"name"`
	Chances         int    `json:"chances"`         // Allowed attempts per round.
	Options         int    `json:"options"`         // Total options shown.
	MatchingOptions [2]int `json:"matchingOptions"` // Inclusive [min,max] related options.
}

// Difficulties are the fixed presets, first is the default.
var Difficulties = []Difficulty{
	{Name: "Normal", Chances: 6, Options: 12, MatchingOptions: [2]int{3, 8}},
	{Name: "Hard", Chances: 4, Options: 8, MatchingOptions: [2]int{3, 5}},
}

// DefaultDifficulty returns the first preset.
func DefaultDifficulty() Difficulty { return Difficulties[0] }

// DifficultyByName looks up a preset by exact name.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// EntryKind tags a log entry.
type EntryKind string

const (
	KindGuess EntryKind = "guess"
	KindWin   EntryKind = "win"
)

// Entry is a single log line. Likeness is the similarity to the target.
// On a win it is always the target length and carries no information;
// it is still serialised so every entry has the same shape.
type Entry struct {
	Kind     EntryKind `json:"type"`
	Value    string    `json:"value"`
	Likeness int       `json:"likeness"`
}

// Round holds the state of a single Wordhack round.
// Chances, guesses and win status are derived from Log on every read.
type Round struct {
	ID         string     // Unique round identifier (uuid).
	Target     string     // The word to identify.
	Difficulty Difficulty // Active preset.
	Options    []string   // Current option set, regenerated with Target/Difficulty.
	Log        []Entry    // Append-only within a round.
	Daily      bool       // Target was chosen by date rather than at random.

	dict []string
	src  Source
}
