// Package highlight classifies row content into per-grapheme lexical tags
// and provides the style table renderers use to color them.
package highlight

// Tag is the lexical classification of a single grapheme cluster.
type Tag uint8

const (
	TagNone Tag = iota
	TagNumber
	TagMatch
)

func (t Tag) String() string {
	switch t {
	case TagNumber:
		return "number"
	case TagMatch:
		return "match"
	default:
		return "none"
	}
}
