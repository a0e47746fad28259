package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindForward(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		query string
		at    int
		want  int
		found bool
	}{
		{"at start", "fn main() {", "main", 0, 3, true},
		{"anchored past match", "abcabc", "abc", 1, 3, true},
		{"anchor on match", "abcabc", "abc", 3, 3, true},
		{"no match after anchor", "abcxyz", "abc", 1, 0, false},
		{"empty query", "abc", "", 0, 0, false},
		{"anchor past end", "abc", "a", 4, 0, false},
		{"anchor at end", "abc", "a", 3, 0, false},
		{"after combining cluster", "éxyz", "xy", 0, 1, true},
		{"after emoji", "👨‍👩‍👧‍👦ab", "ab", 0, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindForward(tc.text, tc.query, tc.at)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFindBackward(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		query string
		at    int
		want  int
		found bool
	}{
		{"last occurrence wins", "abcabc", "abc", 6, 3, true},
		{"window excludes anchor suffix", "abcabc", "abc", 5, 0, true},
		{"empty window", "abc", "a", 0, 0, false},
		{"empty query", "abc", "", 3, 0, false},
		{"anchor past end", "abc", "a", 4, 0, false},
		{"unicode prefix", "ééx", "x", 3, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindBackward(tc.text, tc.query, tc.at)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// With exactly one occurrence in the text, searching forward from the start
// and backward from the end agree on its location.
func TestFind_DirectionsAgreeOnUniqueMatch(t *testing.T) {
	text := "fn main() {"
	fwd, ok := FindForward(text, "main", 0)
	require.True(t, ok)
	back, ok := FindBackward(text, "main", Count(text))
	require.True(t, ok)
	assert.Equal(t, fwd, back)
	assert.Equal(t, 3, fwd)
}
