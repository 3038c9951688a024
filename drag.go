package snapgrid

// dragState tracks a drag gesture's lifecycle.
type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// Drag is the per-piece interactive state machine:
// idle → dragging → {placed | idle}. It clamps live positions into the
// legal play area and, on release, asks the resolver whether to snap.
type Drag struct {
	store  *Store
	state  dragState
	active PieceID
	locked bool
}

// NewDrag creates a drag controller over a store.
func NewDrag(store *Store) *Drag {
	return &Drag{store: store}
}

// SetLocked disables or re-enables drag input. The lifecycle controller
// locks drags for the duration of an auto-solve run; the two are
// mutually exclusive.
func (d *Drag) SetLocked(locked bool) {
	d.locked = locked
	if locked {
		d.state = dragIdle
	}
}

// Dragging reports whether a drag is in flight and, if so, which piece.
func (d *Drag) Dragging() (PieceID, bool) {
	if d.state != dragActive {
		return 0, false
	}
	return d.active, true
}

// Start begins a drag on a piece. Placed pieces never move again, so
// starting on one is ignored, as is any input while locked.
func (d *Drag) Start(id PieceID, g Geometry) bool {
	if d.locked || !g.Ready() {
		return false
	}
	p, ok := d.store.ByID(id)
	if !ok || p.Placed {
		return false
	}
	d.state = dragActive
	d.active = id
	d.store.BumpZIndex(id)
	return true
}

// Move updates the live position of the active piece, clamped into the
// play area. The active piece is raised above everything else so it
// renders on top throughout the gesture.
func (d *Drag) Move(id PieceID, pt Point, g Geometry) bool {
	if d.locked || !g.Ready() || d.state != dragActive || d.active != id {
		return false
	}
	d.store.BumpZIndex(id)
	d.store.SetPosition(id, clampToPlayArea(pt, g))
	return true
}

// End releases the active piece at a working-area-local point and
// reports whether it snapped into its cell. On acceptance the piece is
// committed; on rejection it stays at its last clamped position.
func (d *Drag) End(id PieceID, pt Point, g Geometry) bool {
	if d.locked || !g.Ready() || d.state != dragActive || d.active != id {
		return false
	}
	d.state = dragIdle
	p, ok := d.store.ByID(id)
	if !ok || p.Placed {
		return false
	}
	release := clampToPlayArea(pt, g)
	d.store.SetPosition(id, release)
	if !ResolveDrop(p, release, g) {
		return false
	}
	d.store.SetPosition(id, g.PieceTarget(p.Row, p.Col))
	d.store.SetPlaced(id)
	return true
}
