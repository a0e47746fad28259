package document

// Position points into the document by (grapheme column, row index).
// The document accepts and returns Positions but does not own cursor state.
type Position struct {
	X int
	Y int
}

// Direction selects which side of the anchor a search scans.
type Direction int

const (
	Forward Direction = iota
	Backward
)
