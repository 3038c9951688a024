package snapgrid

import "testing"

func newDragFixture(t *testing.T) (*Drag, *Store, Geometry) {
	t.Helper()
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	return NewDrag(s), s, testGeometry(3)
}

func TestDragClampUpperBound(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.Start(0, g)
	// Any point above the control bar clamps to exactly the minimum Y:
	// barBottom(40) - working.Min.Y(40) + cell/2(50) = 50.
	d.Move(0, Point{X: 100, Y: -1000}, g)
	p, _ := s.ByID(0)
	if p.Position.Y != 50 {
		t.Errorf("clamped Y = %v, want 50", p.Position.Y)
	}
}

func TestDragClampLowerBound(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.Start(0, g)
	// working.H(560) - bottomMargin(37.8) - cell/2(50) = 472.2.
	d.Move(0, Point{X: 100, Y: 9000}, g)
	p, _ := s.ByID(0)
	if p.Position.Y != 472.2 {
		t.Errorf("clamped Y = %v, want 472.2", p.Position.Y)
	}
}

func TestDragClampHorizontal(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.Start(0, g)
	d.Move(0, Point{X: -50, Y: 100}, g)
	p, _ := s.ByID(0)
	if p.Position.X != 50 {
		t.Errorf("left clamp X = %v, want cell/2 = 50", p.Position.X)
	}
	d.Move(0, Point{X: 900, Y: 100}, g)
	p, _ = s.ByID(0)
	if p.Position.X != 310 {
		t.Errorf("right clamp X = %v, want 360 - 50 = 310", p.Position.X)
	}
}

func TestDragRaisesZIndex(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.Start(3, g)
	d.End(3, Point{X: 100, Y: 100}, g)
	d.Start(5, g)
	p3, _ := s.ByID(3)
	p5, _ := s.ByID(5)
	if p5.ZIndex <= p3.ZIndex {
		t.Error("newly picked-up piece should render above the previous one")
	}
}

func TestDragEndSnaps(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.Start(4, g)
	if !d.End(4, g.PieceTarget(1, 1), g) {
		t.Fatal("release on the correct cell center should snap")
	}
	p, _ := s.ByID(4)
	if !p.Placed {
		t.Error("snapped piece should be placed")
	}
	if p.Position != g.PieceTarget(1, 1) {
		t.Errorf("snapped position = %+v, want the cell center", p.Position)
	}
}

func TestDragEndRejectionLeavesPieceWhereDragged(t *testing.T) {
	d, s, g := newDragFixture(t)
	release := Point{X: 100, Y: 450} // well below the grid
	d.Start(4, g)
	if d.End(4, release, g) {
		t.Fatal("release outside the grid should not snap")
	}
	p, _ := s.ByID(4)
	if p.Placed {
		t.Error("rejected piece should not be placed")
	}
	// No return-to-start: the piece stays at the clamped release point.
	if p.Position != release {
		t.Errorf("rejected piece at %+v, want %+v", p.Position, release)
	}
}

func TestDragIgnoresPlacedPieces(t *testing.T) {
	d, s, g := newDragFixture(t)
	s.SetPlaced(0)
	if d.Start(0, g) {
		t.Error("placed pieces never move again")
	}
}

func TestDragLocked(t *testing.T) {
	d, s, g := newDragFixture(t)
	d.SetLocked(true)
	if d.Start(0, g) {
		t.Error("locked drag controller should ignore input")
	}
	d.SetLocked(false)
	if !d.Start(0, g) {
		t.Error("unlocking should restore drag input")
	}
	d.SetLocked(true)
	if d.Move(0, Point{X: 1, Y: 1}, g) {
		t.Error("locking mid-drag should cancel the gesture")
	}
	p, _ := s.ByID(0)
	if p.Placed {
		t.Error("lock must not place anything")
	}
}

func TestDragNoGeometryIsIgnored(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	d := NewDrag(s)
	if d.Start(0, Geometry{}) {
		t.Error("drag before the first layout pass should be ignored")
	}
}
