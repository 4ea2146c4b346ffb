package stackcalc

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
		cols []int
	}{
		{"empty", "", "()", []int{0, 1}},
		{"bare", "1+2", "(1+2)", []int{0, 1, 2, 3, 4}},
		{"spaces", " 1 +\t2 ", "(1+2)", []int{0, 2, 4, 6, 8}},
		{"newline", "1\n", "(1)", []int{0, 1, 3}},
		{"multibyte", "é1", "(é1)", []int{0, 1, 1, 2, 3}},
		{"nbsp", "1\u00a0+2", "(1+2)", []int{0, 1, 3, 4, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := normalize(c.src)
			if n.text != c.text {
				t.Errorf("normalizing %q: want text %q, got %q", c.src, c.text, n.text)
			}
			if !reflect.DeepEqual(n.cols, c.cols) {
				t.Errorf("normalizing %q: want columns %v, got %v", c.src, c.cols, n.cols)
			}
		})
	}
}
