// Package grapheme wraps uniseg with the cluster-level primitives the
// document engine needs: splitting, counting, slicing, directional substring
// search, and terminal cell widths.
//
// All indices in this package are grapheme-cluster indices unless a name
// says otherwise.
package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Clusters returns the grapheme clusters of text in visual order.
func Clusters(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Slice returns the substring covering clusters [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IndexAtByte returns the index of the cluster starting at byte offset off.
// It reports false when off is not a cluster boundary.
func IndexAtByte(text string, off int) (int, bool) {
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		from, _ := g.Positions()
		if from == off {
			return idx, true
		}
		if from > off {
			return 0, false
		}
		idx++
	}
	return 0, false
}

// FindForward locates the first occurrence of query within the clusters of
// text at or after index at. The returned index is absolute within text.
func FindForward(text, query string, at int) (int, bool) {
	if at < 0 {
		at = 0
	}
	n := Count(text)
	if at > n || query == "" {
		return 0, false
	}
	window := Slice(text, at, n)
	byteOff := strings.Index(window, query)
	if byteOff < 0 {
		return 0, false
	}
	idx, ok := IndexAtByte(window, byteOff)
	if !ok {
		return 0, false
	}
	return at + idx, true
}

// FindBackward locates the last occurrence of query within the clusters of
// text strictly before index at.
func FindBackward(text, query string, at int) (int, bool) {
	if at > Count(text) || query == "" {
		return 0, false
	}
	window := Slice(text, 0, at)
	byteOff := strings.LastIndex(window, query)
	if byteOff < 0 {
		return 0, false
	}
	return IndexAtByte(window, byteOff)
}

// Width returns the terminal cell width of a single cluster. Zero-width
// results from runewidth fall back to uniseg's width (ZWJ emoji and friends).
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSeparator reports whether cluster is a single ASCII punctuation or
// whitespace character. Multi-rune clusters are never separators.
func IsSeparator(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 || size != len(cluster) || r >= utf8.RuneSelf {
		return false
	}
	return isASCIIPunct(byte(r)) || isASCIISpace(byte(r))
}

func isASCIIPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
