// Command gen-dictionary builds the game dictionary from an English word corpus.
//
// The corpus is either a JSON array of strings or one word per line. Entries
// of exactly -length letters are upper-cased, de-duplicated and written as a
// JSON array, by default to assets/dictionary.json.
//
//	go run ./cmd/gen-dictionary -in words.txt
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nicksheffield/Wordhack/assets"
	"github.com/nicksheffield/Wordhack/internal/words"
)

func main() {
	in := flag.String("in", "", "corpus file (JSON array or one word per line)")
	out := flag.String("out", filepath.Join("assets", assets.DictionaryFile), "output JSON file")
	length := flag.Int("length", words.DefaultLength, "word length to keep")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	n, err := run(*in, *out, *length)
	if err != nil {
		log.Fatal().Err(err).Msg("gen-dictionary failed")
	}
	log.Info().Int("words", n).Str("out", *out).Msg("dictionary written")
}

// run filters the corpus at in and writes the result to out.
func run(in, out string, length int) (int, error) {
	if in == "" {
		return 0, errors.New("-in is required")
	}
	if length <= 0 {
		return 0, fmt.Errorf("-length must be positive, got %d", length)
	}
	b, err := os.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("read corpus: %w", err)
	}
	corpus, err := words.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("parse corpus: %w", err)
	}
	list := words.Filter(corpus, length)
	if len(list) == 0 {
		return 0, words.ErrEmptyDictionary
	}

	data, err := json.Marshal(list)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	return len(list), nil
}
