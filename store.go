package snapgrid

// Store owns the canonical piece list. It performs no legality checks
// beyond id existence; frame bounds and drop correctness are the
// resolver's and drag controller's business.
type Store struct {
	pieces []Piece
	maxZ   float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps in a new piece list wholesale and resets the
// z-order high-water mark.
func (s *Store) ReplaceAll(pieces []Piece) {
	s.pieces = pieces
	s.maxZ = 0
	for _, p := range pieces {
		if p.ZIndex > s.maxZ {
			s.maxZ = p.ZIndex
		}
	}
}

// Len returns the number of pieces.
func (s *Store) Len() int {
	return len(s.pieces)
}

// Pieces returns a copy of the piece list in store order.
func (s *Store) Pieces() []Piece {
	out := make([]Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// ByID returns the piece with the given id.
func (s *Store) ByID(id PieceID) (Piece, bool) {
	if i := s.index(id); i >= 0 {
		return s.pieces[i], true
	}
	return Piece{}, false
}

// SetPosition moves a piece to a working-area-local point.
func (s *Store) SetPosition(id PieceID, pt Point) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.pieces[i].Position = pt
	return true
}

// SetPlaced commits a piece to its correct cell and zeroes its
// rotation. Placement is monotonic; only ReplaceAll undoes it.
func (s *Store) SetPlaced(id PieceID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.pieces[i].Placed = true
	s.pieces[i].Rotation = 0
	return true
}

// BumpZIndex raises a piece above every other piece by assigning the
// highest observed z value plus one.
func (s *Store) BumpZIndex(id PieceID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.maxZ++
	s.pieces[i].ZIndex = s.maxZ
	return true
}

// Unplaced returns the ids of all unplaced pieces in store order.
func (s *Store) Unplaced() []PieceID {
	var ids []PieceID
	for _, p := range s.pieces {
		if !p.Placed {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// AllPlaced reports whether every piece has been placed. An empty
// store is not considered complete.
func (s *Store) AllPlaced() bool {
	if len(s.pieces) == 0 {
		return false
	}
	for _, p := range s.pieces {
		if !p.Placed {
			return false
		}
	}
	return true
}

func (s *Store) index(id PieceID) int {
	for i := range s.pieces {
		if s.pieces[i].ID == id {
			return i
		}
	}
	return -1
}
