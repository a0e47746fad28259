package document

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/loom/filetype"
)

// ErrInvalidUTF8 is returned by Open when the file content is not valid
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Open reads path as UTF-8 text and builds a document, one row per line.
// A single trailing newline terminates the final line and does not produce
// a phantom empty row. Every row is highlighted before Open returns, and
// the document starts clean.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	ft := filetype.FromName(filepath.Base(path))
	d := &Document{fileName: path, fileType: ft}

	text := string(data)
	if text != "" {
		text = strings.TrimSuffix(text, "\n")
		for _, line := range strings.Split(text, "\n") {
			row := NewRow(line)
			row.Highlight(ft.Options(), "")
			d.rows = append(d.rows, row)
		}
	}
	return d, nil
}

// Save writes every row followed by a single newline to the document's file
// name. Saving with no file name is a no-op, not an error. The file type is
// re-derived from the name first (a rename-on-save changes the highlighting
// language), every row is reclassified, and the dirty flag clears only when
// the whole write succeeds.
func (d *Document) Save() error {
	if d.fileName == "" {
		return nil
	}

	d.fileType = filetype.FromName(filepath.Base(d.fileName))

	f, err := os.Create(d.fileName)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		if _, err := w.WriteString(row.Content()); err != nil {
			f.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for _, row := range d.rows {
		row.Highlight(d.fileType.Options(), "")
	}
	d.dirty = false
	return nil
}
