package snapgrid

import "testing"

func gridPieces(n int) []Piece {
	pieces := make([]Piece, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pieces = append(pieces, newPiece(row, col, n))
		}
	}
	return pieces
}

func TestStoreReplaceAll(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	if s.Len() != 9 {
		t.Errorf("Len = %d, want 9", s.Len())
	}
	if s.AllPlaced() {
		t.Error("fresh pieces should not read as all placed")
	}
}

func TestStoreByID(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	p, ok := s.ByID(5)
	if !ok {
		t.Fatal("piece 5 should exist")
	}
	if p.Row != 1 || p.Col != 2 {
		t.Errorf("piece 5 at (%d,%d), want (1,2)", p.Row, p.Col)
	}
	if _, ok := s.ByID(99); ok {
		t.Error("piece 99 should not exist")
	}
}

func TestStoreSetPlacedZeroesRotation(t *testing.T) {
	s := NewStore()
	pieces := gridPieces(3)
	pieces[4].Rotation = 15
	s.ReplaceAll(pieces)
	s.SetPlaced(4)
	p, _ := s.ByID(4)
	if !p.Placed {
		t.Error("piece should be placed")
	}
	if p.Rotation != 0 {
		t.Errorf("rotation = %v, want 0", p.Rotation)
	}
}

func TestStoreBumpZIndexMonotonic(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	s.BumpZIndex(2)
	s.BumpZIndex(7)
	s.BumpZIndex(2)
	p2, _ := s.ByID(2)
	p7, _ := s.ByID(7)
	if p2.ZIndex <= p7.ZIndex {
		t.Errorf("last-bumped piece should be on top: z2=%v z7=%v", p2.ZIndex, p7.ZIndex)
	}
}

func TestStoreUnplacedOrder(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	s.SetPlaced(0)
	s.SetPlaced(4)
	want := []PieceID{1, 2, 3, 5, 6, 7, 8}
	got := s.Unplaced()
	if len(got) != len(want) {
		t.Fatalf("Unplaced len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unplaced[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreAllPlaced(t *testing.T) {
	s := NewStore()
	if s.AllPlaced() {
		t.Error("empty store should not be complete")
	}
	s.ReplaceAll(gridPieces(3))
	for id := 0; id < 9; id++ {
		s.SetPlaced(PieceID(id))
	}
	if !s.AllPlaced() {
		t.Error("all pieces placed, AllPlaced should be true")
	}
}
