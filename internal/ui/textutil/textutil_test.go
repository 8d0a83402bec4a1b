package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Banana", 10, "Banana"},
		{"Banana", 6, "Banana"},
		{"Banana", 4, "Ban…"},
		{"Banana", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Truncate(tc.in, tc.width), "%q/%d", tc.in, tc.width)
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "Kiwi  ", Fit("Kiwi", 6))
	assert.Equal(t, "Wat…", Fit("Watermelon", 4))
	assert.Equal(t, 5, Width(Fit("日本語", 5)))
	assert.Equal(t, "", Fit("x", 0))
}
