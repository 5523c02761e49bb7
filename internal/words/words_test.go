package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	in := []string{"apple", "Crane", " tiger ", "an", "banana", "it's", "éclat", "APPLE", "crane", "plumb"}
	got := Filter(in, 5)
	want := []string{"APPLE", "CRANE", "TIGER", "PLUMB"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterOtherLength(t *testing.T) {
	got := Filter([]string{"cat", "dog", "bird", "cow"}, 3)
	want := []string{"CAT", "DOG", "COW"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"json", ` ["apple","crane"]`, []string{"apple", "crane"}},
		{"lines", "apple\n\n# comment\ncrane\r\n", []string{"apple", "crane"}},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Parse() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestParseBadJSON(t *testing.T) {
	if _, err := Parse([]byte(`["apple",`)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("", DefaultLength)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() < 100 {
		t.Fatalf("embedded dictionary too small: %d", l.Len())
	}
	for _, w := range l.Words() {
		if len(w) != DefaultLength || !isAlpha(w) {
			t.Fatalf("bad word in embedded dictionary: %q", w)
		}
	}
	if !l.Contains("about") || !l.Contains("ABOUT") {
		t.Fatalf("Contains should be case-insensitive")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple\ncrane\nzz\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path, 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(l.Words(), []string{"APPLE", "CRANE"}) {
		t.Fatalf("Words() = %v", l.Words())
	}
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`["a","bb"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, 5); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("err = %v, want ErrEmptyDictionary", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 5); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
