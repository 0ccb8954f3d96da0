package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein([]rune("same"), []rune("same")))
	assert.Equal(t, 3, levenshtein([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 4, levenshtein([]rune(""), []rune("abcd")))
}

func TestMatchLines_PairsSimilarLines(t *testing.T) {
	dels := []string{"func main() {", "completely unrelated line of text"}
	adds := []string{"zzzz", "func main2() {"}

	groups := matchLines(dels, adds)

	var paired []changeGroup
	for _, g := range groups {
		if g.paired {
			paired = append(paired, g)
		}
	}
	assert.Len(t, paired, 1)
	assert.Equal(t, []int{0}, paired[0].dels)
	assert.Equal(t, []int{1}, paired[0].adds)
}

func TestMatchLines_CoversEveryLineOnce(t *testing.T) {
	dels := []string{"alpha := 1", "beta := 2", "gamma := 3"}
	adds := []string{"alpha := 10", "delta := 4", "gamma := 30"}

	groups := matchLines(dels, adds)

	seenDels := map[int]int{}
	seenAdds := map[int]int{}
	for _, g := range groups {
		for _, i := range g.dels {
			seenDels[i]++
		}
		for _, i := range g.adds {
			seenAdds[i]++
		}
	}
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, seenDels)
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, seenAdds)
}

func TestMatchLines_DissimilarStayUnpaired(t *testing.T) {
	groups := matchLines([]string{"aaaaaaaa"}, []string{"zzzzzzzz"})

	assert.Equal(t, []changeGroup{{dels: []int{0}, adds: []int{0}}}, groups)
}

func TestMatchLines_OnlyOneSide(t *testing.T) {
	assert.Equal(t, []changeGroup{{dels: []int{0, 1}}}, matchLines([]string{"a", "b"}, nil))
	assert.Equal(t, []changeGroup{{adds: []int{0}}}, matchLines(nil, []string{"a"}))
}

func TestMatchLines_LongLinesStayUnpaired(t *testing.T) {
	long := strings.Repeat("a", maxMatchLineLength+1)

	groups := matchLines([]string{"short line", long}, []string{"short line!", long + "b"})

	assert.Equal(t, []changeGroup{
		{dels: []int{0}, adds: []int{0}, paired: true},
		{dels: []int{1}, adds: []int{1}},
	}, groups)
}

func TestMatchLines_LineAtLengthLimitPairs(t *testing.T) {
	// 200 runes, 399 bytes
	line := strings.Repeat("é", maxMatchLineLength-1)

	groups := matchLines([]string{line}, []string{line + "!"})

	assert.Equal(t, []changeGroup{{dels: []int{0}, adds: []int{0}, paired: true}}, groups)
}

func TestInlineSplit(t *testing.T) {
	prefix, suffix := inlineSplit([]rune("return a + b"), []rune("return a - b"))
	assert.Equal(t, 9, prefix)
	assert.Equal(t, 2, suffix)

	prefix, suffix = inlineSplit([]rune("aaa"), []rune("aaaa"))
	assert.Equal(t, 3, prefix)
	assert.Equal(t, 0, suffix)
}
