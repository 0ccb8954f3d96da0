package report

import "unicode/utf8"

const (
	// matchThreshold is the maximum normalized edit distance for two lines to pair
	matchThreshold = 0.25
	// maxComparisons bounds the pairing work per change block
	maxComparisons = 2500
	// maxMatchLineLength is the longest line, in runes, that takes part in pairing
	maxMatchLineLength = 200
)

// changeGroup is a run of deleted and added lines inside one change block.
// Paired groups hold exactly one deleted and one added line.
type changeGroup struct {
	adds   []int
	dels   []int
	paired bool
}

// matchLines pairs deleted and added lines by content similarity.
// Groups come back in document order.
func matchLines(dels, adds []string) []changeGroup {
	if len(dels)*len(adds) > maxComparisons {
		return []changeGroup{{dels: span(0, len(dels)), adds: span(0, len(adds))}}
	}
	m := matcher{
		adds:     adds,
		dels:     dels,
		longAdds: longLines(adds),
		longDels: longLines(dels),
	}
	return m.matchRange(0, len(dels), 0, len(adds), nil)
}

// matcher holds one change block. Long lines are never paired.
type matcher struct {
	adds     []string
	dels     []string
	longAdds []bool
	longDels []bool
}

func (m *matcher) matchRange(d0, d1, a0, a1 int, out []changeGroup) []changeGroup {
	if d0 >= d1 || a0 >= a1 {
		if d0 < d1 || a0 < a1 {
			out = append(out, changeGroup{dels: span(d0, d1), adds: span(a0, a1)})
		}
		return out
	}

	best, bi, bj := -1.0, 0, 0
	for i := d0; i < d1; i++ {
		if m.longDels[i] {
			continue
		}
		for j := a0; j < a1; j++ {
			if m.longAdds[j] {
				continue
			}
			if d := lineDistance(m.dels[i], m.adds[j]); best < 0 || d < best {
				best, bi, bj = d, i, j
			}
		}
	}

	if best < 0 || best > matchThreshold {
		return append(out, changeGroup{dels: span(d0, d1), adds: span(a0, a1)})
	}

	out = m.matchRange(d0, bi, a0, bj, out)
	out = append(out, changeGroup{dels: []int{bi}, adds: []int{bj}, paired: true})
	return m.matchRange(bi+1, d1, bj+1, a1, out)
}

func longLines(lines []string) []bool {
	long := make([]bool, len(lines))
	for i, line := range lines {
		long[i] = len(line) > maxMatchLineLength && utf8.RuneCountInString(line) > maxMatchLineLength
	}
	return long
}

// lineDistance is the rune edit distance divided by the combined length
func lineDistance(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 0
	}
	return float64(levenshtein([]rune(a), []rune(b))) / float64(total)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// inlineSplit returns the common prefix length and the lengths of the
// common suffix of a and b, in runes, without overlap
func inlineSplit(a, b []rune) (prefix, suffix int) {
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	return prefix, suffix
}

func span(from, to int) []int {
	if from >= to {
		return nil
	}
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}
