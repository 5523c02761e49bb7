// internal/words/words.go
//
// Dictionary management for the game.
//
// Responsibilities:
//   - Load the dictionary from a configured file or fall back to the embedded default.
//   - Normalise corpus entries into fixed-length uppercase words.
//   - Offer lookups (Contains) and counts (Len) for the server.
//
// File formats (auto-detected by Parse):
//   - JSON array of strings, as written by cmd/gen-dictionary.
//   - Plain text, one word per line; blank lines and "#" comments skipped.
//
// Constraints:
//   • Words are exactly the configured length (default 5) of ASCII letters.
//   • Words are upper-cased; duplicates are dropped keeping first-seen order.

package words

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nicksheffield/Wordhack/assets"
)

// DefaultLength is the word length of the stock dictionary.
const DefaultLength = 5

// ErrEmptyDictionary is returned when no usable word survives filtering.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// List is a loaded, normalised dictionary.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads the dictionary at path, or the embedded default when path is
// empty, keeping only words of the given length.
func Load(path string, length int) (*List, error) {
	var raw []string
	if path == "" {
		var err error
		if raw, err = assets.Dictionary(); err != nil {
			return nil, fmt.Errorf("embedded dictionary: %w", err)
		}
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if raw, err = Parse(b); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return New(Filter(raw, length))
}

// New wraps already-normalised words.
func New(ws []string) (*List, error) {
	if len(ws) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &List{words: ws, set: toSet(ws)}, nil
}

// Words returns the dictionary in load order. Callers must not modify it.
func (l *List) Words() []string { return l.words }

// Len reports the number of words.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w is in the dictionary (case-insensitive).
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToUpper(strings.TrimSpace(w))]
	return ok
}

// Parse decodes a corpus as a JSON array when it starts with '[',
// otherwise as newline-separated text.
func Parse(b []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []string
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Filter keeps entries of exactly length ASCII letters, upper-cased and
// de-duplicated in first-seen order.
func Filter(corpus []string, length int) []string {
	seen := make(map[string]struct{}, len(corpus))
	out := make([]string, 0, len(corpus)/8)
	for _, s := range corpus {
		w := strings.ToUpper(strings.TrimSpace(s))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
