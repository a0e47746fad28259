package document

import (
	"strings"

	"github.com/iw2rmb/loom/filetype"
	"github.com/iw2rmb/loom/highlight"
	"github.com/iw2rmb/loom/internal/grapheme"
)

// Row is a single line of text: UTF-8 content without a trailing newline, a
// cached grapheme-cluster count, and a per-cluster highlight tag array.
//
// The tag array is a derived cache: any mutation invalidates it, and it stays
// empty until the next Highlight call.
type Row struct {
	content string
	length  int
	tags    []highlight.Tag
}

// NewRow builds a row from one line of text. The content is stored verbatim;
// tags are empty until the row is highlighted.
func NewRow(text string) *Row {
	return &Row{
		content: text,
		length:  grapheme.Count(text),
	}
}

// Len returns the grapheme-cluster count of the row.
func (r *Row) Len() int { return r.length }

// IsEmpty reports whether the row has no content.
func (r *Row) IsEmpty() bool { return r.length == 0 }

// Content returns the row's raw content.
func (r *Row) Content() string { return r.content }

// Insert places the cluster c immediately before the cluster at index at.
// When at is at or past the end, c is appended. The cached length is
// recomputed from the new content, so clusters that merge at the seam
// (combining marks) are counted correctly.
func (r *Row) Insert(at int, c string) {
	if at >= r.length {
		r.set(r.content + c)
		return
	}

	var sb strings.Builder
	sb.Grow(len(r.content) + len(c))
	for idx, cluster := range grapheme.Clusters(r.content) {
		if idx == at {
			sb.WriteString(c)
		}
		sb.WriteString(cluster)
	}
	r.set(sb.String())
}

// Delete removes the cluster at index at. Out-of-range indices are a no-op.
func (r *Row) Delete(at int) {
	if at >= r.length {
		return
	}

	var sb strings.Builder
	sb.Grow(len(r.content))
	for idx, cluster := range grapheme.Clusters(r.content) {
		if idx == at {
			continue
		}
		sb.WriteString(cluster)
	}
	r.set(sb.String())
}

// Append concatenates other onto the row. The length is recomputed from
// scratch: cluster boundaries can change at the concatenation seam.
func (r *Row) Append(other *Row) {
	r.set(r.content + other.content)
}

// Split partitions the row at index at: clusters with index <= at stay in
// the row, clusters past at move to the returned row. Both rows' tags are
// invalidated.
func (r *Row) Split(at int) *Row {
	var kept, rest strings.Builder
	keptLen, restLen := 0, 0
	for idx, cluster := range grapheme.Clusters(r.content) {
		if idx <= at {
			kept.WriteString(cluster)
			keptLen++
		} else {
			rest.WriteString(cluster)
			restLen++
		}
	}

	r.content = kept.String()
	r.length = keptLen
	r.tags = nil

	return &Row{content: rest.String(), length: restLen}
}

// Find locates query within the row. Forward searches the suffix starting at
// cluster index at; Backward searches the prefix ending at it. The returned
// index is a grapheme column.
func (r *Row) Find(query string, at int, dir Direction) (int, bool) {
	if dir == Forward {
		return grapheme.FindForward(r.content, query, at)
	}
	return grapheme.FindBackward(r.content, query, at)
}

// Highlight recomputes the row's tag array for the given feature flags and
// optional search word.
func (r *Row) Highlight(opts filetype.Options, word string) {
	r.tags = highlight.Classify(r.content, opts, word)
}

// Tag returns the highlight tag at cluster index i, TagNone when the index
// is out of range or the tags are stale.
func (r *Row) Tag(i int) highlight.Tag {
	if i < 0 || i >= len(r.tags) {
		return highlight.TagNone
	}
	return r.tags[i]
}

// Tags returns the row's current tag array. It is valid only immediately
// after a Highlight call; mutations empty it.
func (r *Row) Tags() []highlight.Tag { return r.tags }

func (r *Row) set(content string) {
	r.content = content
	r.length = grapheme.Count(content)
	r.tags = nil
}
