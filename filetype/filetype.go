// Package filetype maps file names to a language identity and its
// highlighting feature flags.
package filetype

import "strings"

// Options are the per-language highlighting feature flags.
//
// Strings and Characters are declared for the language table but not yet
// consulted by the classifier.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
}

// FileType is a named language identity plus its highlighting options.
type FileType struct {
	name string
	opts Options
}

// Default is the identity for files with no recognized type. All
// highlighting options are disabled.
func Default() FileType {
	return FileType{name: "No filetype"}
}

// FromName resolves a file name to its FileType. Unmatched names resolve to
// Default; there is no error path.
func FromName(fileName string) FileType {
	if strings.HasSuffix(fileName, ".rs") {
		return FileType{
			name: "Rust",
			opts: Options{Numbers: true, Strings: true, Characters: true},
		}
	}
	return Default()
}

// Name returns the display name of the language.
func (f FileType) Name() string { return f.name }

// Options returns the highlighting feature flags for the language.
func (f FileType) Options() Options { return f.opts }
