package snapgrid

// PieceID identifies a piece for the lifetime of a puzzle instance.
// Ids are assigned as row*N + col at creation and are stable until the
// next full reset.
type PieceID int

// Piece is one puzzle tile. Row and Col name its one correct grid
// cell and never change; everything else is mutated through the Store.
type Piece struct {
	ID  PieceID
	Row int
	Col int

	// Position is the piece's center in working-area-local coordinates.
	Position Point

	// Rotation is retained for forward compatibility; nothing in the
	// current engine sets it to anything but zero.
	Rotation float64

	// Placed becomes true when the piece is committed to its correct
	// cell and only a full reset clears it again.
	Placed bool

	// ZIndex orders rendering; the most recently picked-up piece
	// carries the highest value.
	ZIndex float64
}

// newPiece creates an unplaced piece for the given cell of an n×n grid.
func newPiece(row, col, n int) Piece {
	return Piece{
		ID:  PieceID(row*n + col),
		Row: row,
		Col: col,
	}
}
