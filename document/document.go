package document

import (
	"strings"

	"github.com/iw2rmb/loom/filetype"
)

// Document owns an ordered sequence of rows plus the file identity, dirty
// flag, and active file type. Rows are owned exclusively by their document;
// all multi-row operations go through it.
type Document struct {
	rows     []*Row
	fileName string
	dirty    bool
	fileType filetype.FileType
}

// New returns an empty, unnamed document. An empty document (no rows) is a
// valid state distinct from a document with one empty row.
func New() *Document {
	return &Document{fileType: filetype.Default()}
}

// Row returns the row at index, or nil when index is out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

// IsDirty reports whether the document has unsaved mutations.
func (d *Document) IsDirty() bool { return d.dirty }

// FileName returns the document's path, empty for an unsaved buffer.
func (d *Document) FileName() string { return d.fileName }

// SetFileName renames the document. The file type is re-derived at the next
// Save, so a rename can change the highlighting language.
func (d *Document) SetFileName(name string) { d.fileName = name }

// FileTypeName returns the display name of the active file type.
func (d *Document) FileTypeName() string { return d.fileType.Name() }

// Text returns the document content joined with single newlines, without a
// trailing terminator.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.Content())
	}
	return sb.String()
}

// Insert places the cluster c at position at. A position one past the last
// row appends a new row; anything further is refused silently. Inserting
// "\n" splits the target row per the split contract.
func (d *Document) Insert(at Position, c string) {
	if at.Y > len(d.rows) {
		return
	}
	if c == "\n" {
		d.insertNewline(at)
		return
	}

	d.dirty = true
	if at.Y == len(d.rows) {
		row := NewRow("")
		row.Insert(0, c)
		row.Highlight(d.fileType.Options(), "")
		d.rows = append(d.rows, row)
		return
	}

	row := d.rows[at.Y]
	row.Insert(at.X, c)
	row.Highlight(d.fileType.Options(), "")
}

func (d *Document) insertNewline(at Position) {
	if at.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if at.Y >= len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		return
	}

	row := d.rows[at.Y]
	rest := row.Split(at.X)
	row.Highlight(d.fileType.Options(), "")
	rest.Highlight(d.fileType.Options(), "")

	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = rest
}

// Delete removes the cluster at position at. A position exactly at the end
// of a row merges the following row into it; positions past the end are
// refused silently and leave the document (and dirty flag) untouched.
func (d *Document) Delete(at Position) {
	if at.Y >= len(d.rows) {
		return
	}

	row := d.rows[at.Y]
	if at.X >= row.Len() {
		if at.X == row.Len() && at.Y+1 < len(d.rows) {
			next := d.rows[at.Y+1]
			d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
			row.Append(next)
			row.Highlight(d.fileType.Options(), "")
			d.dirty = true
		}
		return
	}

	row.Delete(at.X)
	row.Highlight(d.fileType.Options(), "")
	d.dirty = true
}

// Find searches for query from the anchor position. Forward scans the
// anchor row from at.X and then each following row from column 0; Backward
// scans the anchor row up to at.X and then each prior row anchored at its
// own length. The search does not wrap.
func (d *Document) Find(query string, at Position, dir Direction) (Position, bool) {
	if at.Y >= len(d.rows) {
		return Position{}, false
	}

	x := at.X
	if dir == Forward {
		for y := at.Y; y < len(d.rows); y++ {
			if ix, ok := d.rows[y].Find(query, x, Forward); ok {
				return Position{X: ix, Y: y}, true
			}
			x = 0
		}
		return Position{}, false
	}

	for y := at.Y; y >= 0; y-- {
		if ix, ok := d.rows[y].Find(query, x, Backward); ok {
			return Position{X: ix, Y: y}, true
		}
		if y > 0 {
			x = d.rows[y-1].Len()
		}
	}
	return Position{}, false
}

// Highlight reclassifies every row against the active file type and the
// given search word. Renderers call this before each draw so edits and live
// search terms are reflected.
func (d *Document) Highlight(word string) {
	for _, row := range d.rows {
		row.Highlight(d.fileType.Options(), word)
	}
}
