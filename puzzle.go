package snapgrid

import "time"

// CompletionDelay is how long the final snap animation is given to
// finish before the completed signal fires. The engine only marks the
// signal pending; the presentation layer schedules the delay and then
// calls ConfirmCompletion.
const CompletionDelay = 500 * time.Millisecond

// Puzzle is the lifecycle controller: it owns the store, drag
// controller, auto-solve sequencer and secret-gesture recognizer, and
// orchestrates initialization, reset, grid-size toggling and
// reshuffling on layout changes.
type Puzzle struct {
	cfg    *config
	store  *Store
	drag   *Drag
	solver *Solver
	secret *SecretTaps

	n   int
	geo Geometry

	completed         bool
	completionPending bool
	customArt         bool

	onCompleted func()
	onSecret    func(visible bool)
	onPlaced    func(id PieceID)
}

// New creates a puzzle from the options. The store is empty until
// geometry arrives and Initialize runs.
func New(opts ...Option) (*Puzzle, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.gridSize != 3 && cfg.gridSize != 4 {
		return nil, ErrBadGridSize
	}
	store := NewStore()
	p := &Puzzle{
		cfg:    cfg,
		store:  store,
		drag:   NewDrag(store),
		solver: NewSolver(store),
		secret: NewSecretTaps(cfg.gridSize),
		n:      cfg.gridSize,
	}
	p.solver.SetSlowInterval(cfg.slowInterval)
	p.solver.SetDoneCallback(func() {
		p.drag.SetLocked(false)
		p.maybeComplete()
	})
	return p, nil
}

// SetCompletedCallback sets a callback fired once per completed puzzle,
// after ConfirmCompletion.
func (p *Puzzle) SetCompletedCallback(cb func()) {
	p.onCompleted = cb
}

// SetSecretCallback sets a callback fired whenever the auto-solve
// control's visibility changes.
func (p *Puzzle) SetSecretCallback(cb func(visible bool)) {
	p.onSecret = cb
}

// SetPlacedCallback sets a callback fired when a piece snaps into its
// cell through a drag. Auto-solved pieces do not fire it.
func (p *Puzzle) SetPlacedCallback(cb func(id PieceID)) {
	p.onPlaced = cb
}

// GridSize returns the current grid side length (3 or 4).
func (p *Puzzle) GridSize() int {
	return p.n
}

// Store exposes the piece list for rendering.
func (p *Puzzle) Store() *Store {
	return p.store
}

// Geometry returns the current layout snapshot.
func (p *Puzzle) Geometry() Geometry {
	return p.geo
}

// SetGeometry records a layout pass: the grid and working rectangles
// and the control bar's bottom edge, all in screen coordinates. The
// cell size is derived from the grid square and the current grid size.
func (p *Puzzle) SetGeometry(grid, working Rect, barBottomY float64) {
	p.geo = Geometry{
		Grid:       grid,
		Working:    working,
		BarBottomY: barBottomY,
		N:          p.n,
		CellSize:   grid.Size.W / float64(p.n),
		Version:    p.geo.Version + 1,
	}
}

// Initialize replaces the piece list wholesale: one piece per (row,
// col) cell, scattered uniformly at random within the legal drag
// bounds. Before the first layout pass the pieces land at the working
// area's origin.
func (p *Puzzle) Initialize() {
	pieces := make([]Piece, 0, p.n*p.n)
	for row := 0; row < p.n; row++ {
		for col := 0; col < p.n; col++ {
			piece := newPiece(row, col, p.n)
			if p.geo.Ready() {
				piece.Position = p.scatterPoint()
			}
			pieces = append(pieces, piece)
		}
	}
	p.store.ReplaceAll(pieces)
}

// scatterPoint picks a uniform random working-area-local point inside
// the same bounds the drag clamp enforces.
func (p *Puzzle) scatterPoint() Point {
	g := p.geo
	half := g.CellSize / 2
	minX, maxX := half, g.Working.Size.W-half
	minY := g.BarBottomY - g.Working.Min.Y + half
	maxY := g.Working.Size.H - bottomMargin - half
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return Point{
		X: minX + p.cfg.rng.Float64()*(maxX-minX),
		Y: minY + p.cfg.rng.Float64()*(maxY-minY),
	}
}

// Reset discards all progress: it stops any auto-solve run, clears the
// completion state, empties the secret-tap buffer, hides the auto-solve
// control, and re-initializes the pieces.
func (p *Puzzle) Reset() {
	p.solver.Stop()
	p.drag.SetLocked(false)
	p.completed = false
	p.completionPending = false
	wasVisible := p.secret.Visible()
	p.secret.Reset()
	if wasVisible && p.onSecret != nil {
		p.onSecret(false)
	}
	p.Initialize()
}

// ToggleGridSize flips the grid between 3×3 and 4×4 and resets.
// Grid-size changes are destructive.
func (p *Puzzle) ToggleGridSize() {
	if p.n == 3 {
		p.n = 4
	} else {
		p.n = 3
	}
	p.secret.setGridSize(p.n)
	if p.geo.Ready() {
		p.SetGeometry(p.geo.Grid, p.geo.Working, p.geo.BarBottomY)
	}
	p.Reset()
}

// ShuffleUnplaced re-scatters only the unplaced pieces, using current
// bounds. Invoked on orientation changes; placed pieces stay put.
func (p *Puzzle) ShuffleUnplaced() {
	if !p.geo.Ready() {
		return
	}
	for _, id := range p.store.Unplaced() {
		p.store.SetPosition(id, p.scatterPoint())
	}
}

// PieceTarget returns the working-area-local point the piece snaps to,
// useful for drawing snap previews. It fails with ErrNoGeometry before
// the first layout pass and ErrUnknownPiece for a stale id.
func (p *Puzzle) PieceTarget(id PieceID) (Point, error) {
	if !p.geo.Ready() {
		return Point{}, ErrNoGeometry
	}
	pc, ok := p.store.ByID(id)
	if !ok {
		return Point{}, ErrUnknownPiece
	}
	return p.geo.PieceTarget(pc.Row, pc.Col), nil
}

// DragStart begins dragging a piece.
func (p *Puzzle) DragStart(id PieceID) bool {
	return p.drag.Start(id, p.geo)
}

// DragMove updates the live drag position, clamped into the play area.
func (p *Puzzle) DragMove(id PieceID, pt Point) bool {
	return p.drag.Move(id, pt, p.geo)
}

// DragEnd releases a piece and reports whether it snapped into place.
// A snap fires the placed callback and runs the completion check.
func (p *Puzzle) DragEnd(id PieceID, pt Point) bool {
	if !p.drag.End(id, pt, p.geo) {
		return false
	}
	if p.onPlaced != nil {
		p.onPlaced(id)
	}
	p.maybeComplete()
	return true
}

// TapCell records a tap on a grid cell for the secret gesture.
func (p *Puzzle) TapCell(row, col int) {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return
	}
	if p.secret.Tap(row, col) && p.onSecret != nil {
		p.onSecret(p.secret.Visible())
	}
}

// SolveVisible reports whether the auto-solve control is unlocked.
func (p *Puzzle) SolveVisible() bool {
	return p.secret.Visible()
}

// StartSolve begins an auto-solve run at the slow pace and locks out
// manual dragging. It requires the control to be unlocked and usable
// geometry.
func (p *Puzzle) StartSolve() bool {
	if !p.secret.Visible() {
		return false
	}
	if !p.solver.Start(p.geo) {
		return false
	}
	p.drag.SetLocked(true)
	return true
}

// StopSolve cancels the run; the cancellation takes effect before the
// next step commits.
func (p *Puzzle) StopSolve() {
	p.solver.Stop()
}

// SpeedUpSolve switches the run to the fast pace from the next step on.
func (p *Puzzle) SpeedUpSolve() {
	p.solver.SetInterval(p.cfg.fastInterval)
}

// SolveRunning reports whether an auto-solve run is active.
func (p *Puzzle) SolveRunning() bool {
	return p.solver.Running()
}

// AdvanceSolve drives the sequencer one transition and returns the
// delay before the caller should call it again; done=true ends the
// run and re-enables dragging.
func (p *Puzzle) AdvanceSolve() (time.Duration, bool) {
	delay, done := p.solver.Advance()
	if done {
		p.drag.SetLocked(false)
	}
	return delay, done
}

// maybeComplete marks the completed signal pending once every piece is
// placed. It never fires the signal itself; the presentation layer
// waits CompletionDelay and calls ConfirmCompletion.
func (p *Puzzle) maybeComplete() {
	if p.completed || p.completionPending {
		return
	}
	if p.store.AllPlaced() {
		p.completionPending = true
	}
}

// CompletionPending reports whether a completed signal is waiting on
// its delay.
func (p *Puzzle) CompletionPending() bool {
	return p.completionPending
}

// ConfirmCompletion fires the pending completed signal exactly once.
// Calling it with nothing pending is a no-op.
func (p *Puzzle) ConfirmCompletion() {
	if !p.completionPending {
		return
	}
	p.completionPending = false
	p.completed = true
	if p.onCompleted != nil {
		p.onCompleted()
	}
}

// Completed reports whether the puzzle has been completed and the
// signal confirmed.
func (p *Puzzle) Completed() bool {
	return p.completed
}

// SetArtwork records whether a custom image backs the tiles; the
// engine only cares about existence, never bytes. A new image starts a
// fresh puzzle.
func (p *Puzzle) SetArtwork(present bool) {
	p.customArt = present
	p.Reset()
}

// UsesCustomArt reports whether rendering should use custom artwork
// rather than the built-in default.
func (p *Puzzle) UsesCustomArt() bool {
	return p.customArt
}
