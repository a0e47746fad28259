package highlight

import (
	"github.com/iw2rmb/loom/filetype"
	"github.com/iw2rmb/loom/internal/grapheme"
)

// Classify recomputes the tag array for one row of content. The result has
// exactly one tag per grapheme cluster.
//
// When word is non-empty, every non-overlapping occurrence is tagged
// TagMatch; matches take priority over lexical tags and are never
// subdivided. Number runs cover consecutive ASCII digits plus a single
// embedded decimal point, gated on opts.Numbers.
//
// Classification is a full recompute, never an incremental patch: callers
// re-run it on every row an edit touched before rendering.
func Classify(content string, opts filetype.Options, word string) []Tag {
	clusters := grapheme.Clusters(content)
	tags := make([]Tag, 0, len(clusters))

	var matches map[int]bool
	wordLen := 0
	if word != "" {
		wordLen = grapheme.Count(word)
		matches = make(map[int]bool)
		at := 0
		for {
			m, ok := grapheme.FindForward(content, word, at)
			if !ok {
				break
			}
			matches[m] = true
			at = m + wordLen
		}
	}

	prevSep := true
	runHasDot := false
	for i := 0; i < len(clusters); {
		if matches[i] {
			for j := 0; j < wordLen && i < len(clusters); j++ {
				tags = append(tags, TagMatch)
				i++
			}
			continue
		}

		prev := TagNone
		if i > 0 {
			prev = tags[i-1]
		}

		c := clusters[i]
		tag := TagNone
		if opts.Numbers {
			switch {
			case isASCIIDigit(c) && (prevSep || prev == TagNumber):
				if prev != TagNumber {
					runHasDot = false
				}
				tag = TagNumber
			case c == "." && prev == TagNumber && !runHasDot:
				runHasDot = true
				tag = TagNumber
			}
		}
		if tag == TagNone {
			runHasDot = false
		}

		tags = append(tags, tag)
		prevSep = grapheme.IsSeparator(c)
		i++
	}
	return tags
}

func isASCIIDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}
