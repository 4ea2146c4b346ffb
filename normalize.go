package stackcalc

import (
	"strings"
	"unicode"
)

// normalized is an expression with whitespace removed and an implicit pair of
// parentheses around it. The closing parenthesis forces every pending
// operator to be reduced the same way an explicit ) does.
type normalized struct {
	text string
	// cols holds, for each byte of text, the 1-based rune column in the
	// original input where that byte came from. The implicit ( is column 0
	// and the implicit ) is one past the last rune.
	cols []int
}

func normalize(src string) normalized {
	var b strings.Builder
	b.Grow(len(src) + 2)
	cols := make([]int, 0, len(src)+2)
	b.WriteByte('(')
	cols = append(cols, 0)
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		n := b.Len()
		b.WriteRune(r)
		for i := n; i < b.Len(); i++ {
			cols = append(cols, col)
		}
	}
	b.WriteByte(')')
	cols = append(cols, col+1)
	return normalized{text: b.String(), cols: cols}
}

// col returns the input column of byte i of the normalized text.
func (n normalized) col(i int) int {
	return n.cols[i]
}
