// Package document implements the grapheme-indexed line buffer: an ordered
// sequence of rows with point edits, bidirectional search, and per-row
// highlight tags.
//
// Coordinates are 0-based. Position.X is a grapheme-cluster column,
// Position.Y a row index. Out-of-range coordinates are refused silently;
// callers clamp before calling in.
package document
