package game

// Likeness counts the positions at which a and b hold the same byte.
// Positions of a beyond the end of b never match. Comparison is
// case-sensitive and byte-wise; dictionary words are ASCII.
func Likeness(a, b string) int {
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			n++
		}
	}
	return n
}
