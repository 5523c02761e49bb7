package game

// Sample draws an option set for target from dict.
//
//  1. matching is drawn from diff.MatchingOptions.
//  2. dict is split into related (likeness > 0) and unrelated (likeness == 0)
//     words. Occurrences of target are left out of both.
//  3. Each side is shuffled; the first matching related and the first
//     diff.Options-1-matching unrelated words are kept.
//  4. Target is appended once and the whole set shuffled.
//
// A side shorter than requested contributes what it has, so the result may
// hold fewer than diff.Options words on small dictionaries.
func Sample(src Source, dict []string, target string, diff Difficulty) []string {
	slots := max(diff.Options-1, 0) // one slot is the target's
	matching := min(max(RandInt(src, diff.MatchingOptions[0], diff.MatchingOptions[1]), 0), slots)
	unmatching := slots - matching

	var related, unrelated []string
	for _, w := range dict {
		if w == target {
			continue
		}
		if Likeness(w, target) > 0 {
			related = append(related, w)
		} else {
			unrelated = append(unrelated, w)
		}
	}

	Shuffle(src, related)
	Shuffle(src, unrelated)

	out := make([]string, 0, slots+1)
	out = append(out, related[:min(matching, len(related))]...)
	out = append(out, unrelated[:min(unmatching, len(unrelated))]...)
	out = append(out, target)
	return Shuffle(src, out)
}
