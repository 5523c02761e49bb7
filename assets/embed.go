package assets

import (
	"embed"
	"encoding/json"
)

// FS holds the default dictionary: a JSON array of uppercase 5-letter
// words produced by cmd/gen-dictionary.
//
//go:embed dictionary.json
var FS embed.FS

// DictionaryFile is the embedded file name, also the generator's default output.
const DictionaryFile = "dictionary.json"

// Dictionary decodes the embedded word list as stored, without filtering.
func Dictionary() ([]string, error) {
	b, err := FS.ReadFile(DictionaryFile)
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
