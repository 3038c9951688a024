package snapgrid

// SnapThreshold is the maximum distance, in length units, between a
// release point and the target cell's center at which a correctly
// celled drop snaps into place. Being in the right cell is necessary
// but not sufficient; the piece must also be dropped near the center.
const SnapThreshold = 30.0

// bottomMargin is the strip reserved at the bottom of the working
// area that pieces cannot be dragged into (~1 cm in length units).
const bottomMargin = 37.8

// Geometry is a snapshot of the layout rectangles the engine needs.
// The presentation layer rewrites it once per layout pass; the engine
// only reads it. All rectangles are in screen coordinates.
type Geometry struct {
	// Grid is the bounding rectangle of the N×N target grid.
	Grid Rect

	// Working is the bounding rectangle of the area where unplaced
	// pieces scatter and drag.
	Working Rect

	// BarBottomY is the screen Y of the control bar's bottom edge;
	// pieces cannot be dragged up behind the bar.
	BarBottomY float64

	// N is the grid side length and CellSize the grid side divided
	// by N.
	N        int
	CellSize float64

	// Version increments on every layout pass so readers can tell
	// snapshots apart.
	Version uint64
}

// Ready reports whether the snapshot carries usable rectangles.
// Operations that depend on geometry no-op until the first layout
// pass has run.
func (g Geometry) Ready() bool {
	return g.Grid.Size.W > 0 && g.Grid.Size.H > 0 &&
		g.Working.Size.W > 0 && g.Working.Size.H > 0 &&
		g.N > 0 && g.CellSize > 0
}

// ToGlobal converts a working-area-local point to screen coordinates.
func ToGlobal(local Point, working Rect) Point {
	return local.Add(working.Min)
}

// ToGridLocal converts a screen point to grid-local coordinates.
func ToGridLocal(global Point, grid Rect) Point {
	return global.Sub(grid.Min)
}

// CellCenter returns the grid-local center of the given cell.
func CellCenter(row, col int, cellSize float64) Point {
	return Point{
		X: float64(col)*cellSize + cellSize/2,
		Y: float64(row)*cellSize + cellSize/2,
	}
}

// PieceTarget returns the working-area-local point a piece occupies
// when placed in its correct cell: the cell center converted
// grid-local → global → working-local.
func (g Geometry) PieceTarget(row, col int) Point {
	center := CellCenter(row, col, g.CellSize)
	global := center.Add(g.Grid.Min)
	return global.Sub(g.Working.Min)
}

// ResolveDrop decides whether releasing a piece at a working-area-local
// point snaps it into its correct cell. The drop is rejected when the
// release lands outside the grid, in the wrong cell, or in the correct
// cell but farther than SnapThreshold from its center. A rejected piece
// stays exactly where it was dragged; there is no return-to-start.
func ResolveDrop(p Piece, release Point, g Geometry) bool {
	if !g.Ready() {
		return false
	}
	global := ToGlobal(release, g.Working)
	local := ToGridLocal(global, g.Grid)
	if local.X < 0 || local.X > g.Grid.Size.W ||
		local.Y < 0 || local.Y > g.Grid.Size.H {
		return false
	}
	targetCol := int(local.X / g.CellSize)
	targetRow := int(local.Y / g.CellSize)
	if targetRow != p.Row || targetCol != p.Col {
		return false
	}
	center := CellCenter(targetRow, targetCol, g.CellSize)
	return local.Dist(center) <= SnapThreshold
}

// clampToPlayArea restricts a working-area-local drag point so the
// piece center stays inside the legal play region: half a cell from
// the left/right edges, below the control bar, and above the reserved
// bottom margin. Clamping the live position each move gives the drag a
// rubber-wall feel rather than a hard stop.
func clampToPlayArea(pt Point, g Geometry) Point {
	half := g.CellSize / 2
	minY := g.BarBottomY - g.Working.Min.Y + half
	maxY := g.Working.Size.H - bottomMargin - half
	return Point{
		X: clamp(pt.X, half, g.Working.Size.W-half),
		Y: clamp(pt.Y, minY, maxY),
	}
}
