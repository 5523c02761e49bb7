package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2024-03-01" {
		t.Fatalf("DateKey() = %q, want 2024-03-01", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	later := d.Add(23 * time.Hour)
	a := WordIndex(d, "salt", 500)
	if b := WordIndex(later, "salt", 500); a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 500 {
		t.Fatalf("index out of range: %d", a)
	}
}

func TestWordIndexVariesBySaltAndDay(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(base.AddDate(0, 0, i), "salt", 1000)] = true
	}
	if len(seen) < 20 {
		t.Fatalf("only %d distinct indices over 30 days", len(seen))
	}
}

func TestWordEmptyDict(t *testing.T) {
	if w := Word(time.Now(), "salt", nil); w != "" {
		t.Fatalf("Word() = %q, want empty", w)
	}
	if i := WordIndex(time.Now(), "salt", 0); i != 0 {
		t.Fatalf("WordIndex() = %d, want 0", i)
	}
}
