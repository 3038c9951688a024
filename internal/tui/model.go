// Package tui implements the terminal presentation layer for the
// puzzle engine: mouse-driven dragging, tick-scheduled auto-solve and
// lipgloss rendering. All engine state lives in snapgrid; this package
// only feeds it events and draws its store.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmelgaard/snapgrid"
	"github.com/kmelgaard/snapgrid/internal/state"
	"github.com/kmelgaard/snapgrid/internal/storage"
)

// Engine length units per terminal cell. A puzzle cell renders as
// cellCols x cellRows characters, which is square in units (and close
// to square on screen).
const (
	unitsPerCol = 12.0
	unitsPerRow = 24.0
	cellCols    = 6
	cellRows    = 3

	barRows  = 2 // control bar height in terminal rows
	gridLeft = 2 // grid x offset in terminal columns
)

// Messages
type solveStepMsg struct{}
type completionMsg struct{}

// Model drives the interactive puzzle screen.
type Model struct {
	puzzle *snapgrid.Puzzle
	repo   *storage.CompletionRepository // nil disables history
	prefs  *state.File                   // nil disables preferences

	width  int
	height int
	sized  bool
	wide   bool // landscape vs portrait, for reshuffling on flips

	// Session tracking for the history row.
	startedAt     time.Time
	moves         int
	usedAutoSolve bool

	dragging  snapgrid.PieceID
	hasDrag   bool
	tapRow    int
	tapCol    int
	hasTap    bool

	completed bool
	status    string
	err       error
	quitting  bool
}

// NewModel creates the puzzle screen. repo and prefs may be nil.
func NewModel(p *snapgrid.Puzzle, repo *storage.CompletionRepository, prefs *state.File) *Model {
	m := &Model{
		puzzle:    p,
		repo:      repo,
		prefs:     prefs,
		startedAt: time.Now(),
	}
	p.SetSecretCallback(func(visible bool) {
		if visible {
			m.status = "auto-solve unlocked"
		} else {
			m.status = ""
		}
	})
	p.SetPlacedCallback(func(snapgrid.PieceID) {
		m.moves++
	})
	p.SetCompletedCallback(func() {
		m.completed = true
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// layoutGeometry feeds the engine a fresh geometry snapshot derived
// from the terminal size. Called once per resize, which is the TUI's
// layout pass.
func (m *Model) layoutGeometry() {
	n := m.puzzle.GridSize()
	gridSide := float64(n*cellCols) * unitsPerCol
	barBottom := float64(barRows) * unitsPerRow

	working := snapgrid.NewRect(
		0, barBottom,
		float64(m.width)*unitsPerCol,
		float64(m.height-barRows)*unitsPerRow,
	)
	grid := snapgrid.NewRect(
		float64(gridLeft)*unitsPerCol, barBottom,
		gridSide, gridSide,
	)
	m.puzzle.SetGeometry(grid, working, barBottom)
}

// restartSession resets the per-run counters behind a fresh puzzle.
func (m *Model) restartSession() {
	m.startedAt = time.Now()
	m.moves = 0
	m.usedAutoSolve = false
	m.completed = false
	m.status = ""
}

// solveStep drives one sequencer transition and schedules the next.
func (m *Model) solveStep() tea.Cmd {
	delay, done := m.puzzle.AdvanceSolve()
	if done {
		return m.maybeScheduleCompletion()
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return solveStepMsg{}
	})
}

// maybeScheduleCompletion waits out the final snap animation before
// confirming the completed signal.
func (m *Model) maybeScheduleCompletion() tea.Cmd {
	if !m.puzzle.CompletionPending() {
		return nil
	}
	return tea.Tick(snapgrid.CompletionDelay, func(time.Time) tea.Msg {
		return completionMsg{}
	})
}

// recordCompletion writes the finished puzzle to the history store.
func (m *Model) recordCompletion() {
	if m.repo == nil {
		return
	}
	_, err := m.repo.Create(storage.Completion{
		GridSize:   m.puzzle.GridSize(),
		DurationMs: time.Since(m.startedAt).Milliseconds(),
		Moves:      m.moves,
		AutoSolved: m.usedAutoSolve,
		CustomArt:  m.puzzle.UsesCustomArt(),
	})
	if err != nil {
		m.err = err
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.prefs != nil {
				m.prefs.SetGridSize(m.puzzle.GridSize())
			}
			return m, tea.Quit

		case "r", "enter":
			// Reset, doubling as "play again" once completed.
			m.puzzle.Reset()
			m.restartSession()

		case "g":
			m.puzzle.ToggleGridSize()
			m.layoutGeometry()
			m.puzzle.Initialize()
			m.restartSession()

		case "s":
			if m.puzzle.StartSolve() {
				m.usedAutoSolve = true
				return m, m.solveStep()
			}

		case "x":
			m.puzzle.StopSolve()

		case "f":
			m.puzzle.SpeedUpSolve()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		wasWide := m.wide
		m.wide = msg.Width >= msg.Height*2
		m.layoutGeometry()
		switch {
		case !m.sized:
			m.sized = true
			m.puzzle.Initialize()
			m.restartSession()
		case wasWide != m.wide:
			// Orientation flip: re-scatter only the unplaced pieces.
			m.puzzle.ShuffleUnplaced()
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case solveStepMsg:
		return m, m.solveStep()

	case completionMsg:
		m.puzzle.ConfirmCompletion()
		if m.completed {
			m.recordCompletion()
		}
	}

	return m, nil
}

// handleMouse routes press/motion/release events into drags and
// grid taps.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return nil
	}
	pt := m.unitPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if id, ok := m.pieceAt(msg.X, msg.Y); ok {
			if m.puzzle.DragStart(id) {
				m.dragging = id
				m.hasDrag = true
				return nil
			}
		}
		if row, col, ok := m.gridCellAt(msg.X, msg.Y); ok {
			m.tapRow, m.tapCol, m.hasTap = row, col, true
		}

	case tea.MouseActionMotion:
		if m.hasDrag {
			m.puzzle.DragMove(m.dragging, pt)
			m.hasTap = false
		}

	case tea.MouseActionRelease:
		if m.hasDrag {
			m.hasDrag = false
			if m.puzzle.DragEnd(m.dragging, pt) {
				return m.maybeScheduleCompletion()
			}
			return nil
		}
		if m.hasTap {
			m.hasTap = false
			if row, col, ok := m.gridCellAt(msg.X, msg.Y); ok && row == m.tapRow && col == m.tapCol {
				m.puzzle.TapCell(row, col)
			}
		}
	}
	return nil
}

// unitPoint converts a terminal coordinate to working-area-local
// engine units, addressing the character cell's center.
func (m *Model) unitPoint(x, y int) snapgrid.Point {
	working := m.puzzle.Geometry().Working
	global := snapgrid.Point{
		X: float64(x)*unitsPerCol + unitsPerCol/2,
		Y: float64(y)*unitsPerRow + unitsPerRow/2,
	}
	return global.Sub(working.Min)
}

// pieceAt hit-tests unplaced pieces at a terminal coordinate,
// topmost z first.
func (m *Model) pieceAt(x, y int) (snapgrid.PieceID, bool) {
	var best snapgrid.PieceID
	bestZ := -1.0
	for _, p := range m.puzzle.Store().Pieces() {
		if p.Placed {
			continue
		}
		c0, r0 := m.pieceOrigin(p)
		if x >= c0 && x < c0+cellCols && y >= r0 && y < r0+cellRows && p.ZIndex > bestZ {
			best, bestZ = p.ID, p.ZIndex
		}
	}
	return best, bestZ >= 0
}

// pieceOrigin returns the top-left terminal cell of a piece's
// rendered block.
func (m *Model) pieceOrigin(p snapgrid.Piece) (col, row int) {
	working := m.puzzle.Geometry().Working
	global := p.Position.Add(working.Min)
	col = int(global.X/unitsPerCol) - cellCols/2
	row = int(global.Y/unitsPerRow) - cellRows/2
	return col, row
}

// gridCellAt maps a terminal coordinate to a grid cell, if inside
// the grid square.
func (m *Model) gridCellAt(x, y int) (row, col int, ok bool) {
	n := m.puzzle.GridSize()
	gx := x - gridLeft
	gy := y - barRows
	if gx < 0 || gy < 0 || gx >= n*cellCols || gy >= n*cellRows {
		return 0, 0, false
	}
	return gy / cellRows, gx / cellCols, true
}
