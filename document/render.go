package document

import (
	"strings"

	"github.com/iw2rmb/loom/highlight"
	"github.com/iw2rmb/loom/internal/grapheme"
)

// TabWidth is the fixed expansion width for tab characters in rendered
// output.
const TabWidth = 4

var tabExpansion = strings.Repeat(" ", TabWidth)

// Render returns the visible text for clusters [start, end), clamped to the
// row length, with tabs expanded to TabWidth spaces. Display only; the row
// is not mutated.
func (r *Row) Render(start, end int) string {
	if end > r.length {
		end = r.length
	}
	if start > end {
		start = end
	}

	var sb strings.Builder
	for idx, cluster := range grapheme.Clusters(r.content) {
		if idx < start {
			continue
		}
		if idx >= end {
			break
		}
		if cluster == "\t" {
			sb.WriteString(tabExpansion)
		} else {
			sb.WriteString(cluster)
		}
	}
	return sb.String()
}

// RenderStyled is Render with the row's highlight tags applied: consecutive
// clusters sharing a tag are grouped into one styled run.
func (r *Row) RenderStyled(start, end int, st highlight.Styles) string {
	if end > r.length {
		end = r.length
	}
	if start > end {
		start = end
	}

	var sb strings.Builder
	var run strings.Builder
	current := highlight.TagNone

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(st.For(current).Render(run.String()))
		run.Reset()
	}

	for idx, cluster := range grapheme.Clusters(r.content) {
		if idx < start {
			continue
		}
		if idx >= end {
			break
		}
		if tag := r.Tag(idx); tag != current {
			flush()
			current = tag
		}
		if cluster == "\t" {
			run.WriteString(tabExpansion)
		} else {
			run.WriteString(cluster)
		}
	}
	flush()
	return sb.String()
}

// DisplayWidth returns the terminal cell width of the whole row, with tabs
// counted at TabWidth cells.
func (r *Row) DisplayWidth() int {
	w := 0
	for _, cluster := range grapheme.Clusters(r.content) {
		if cluster == "\t" {
			w += TabWidth
			continue
		}
		w += grapheme.Width(cluster)
	}
	return w
}
