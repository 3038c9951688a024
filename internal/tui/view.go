package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmelgaard/snapgrid"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Tile palettes, indexed by piece id. The default artwork is the cool
// ramp; a custom image switches to the warm one.
var (
	defaultPalette = []string{
		"24", "25", "26", "27", "30", "31", "32", "33",
		"36", "37", "38", "39", "60", "61", "62", "63",
	}
	customPalette = []string{
		"88", "94", "100", "106", "124", "130", "136", "142",
		"160", "166", "172", "178", "196", "202", "208", "214",
	}
)

const (
	emptyCellBgA = "235"
	emptyCellBgB = "237"
	labelFg      = "231"
	placedFg     = "250"
)

// cellBuf is a styled character buffer the playfield is painted into.
type cellBuf struct {
	w, h int
	ch   [][]rune
	fg   [][]string
	bg   [][]string
}

func newCellBuf(w, h int) *cellBuf {
	b := &cellBuf{w: w, h: h}
	b.ch = make([][]rune, h)
	b.fg = make([][]string, h)
	b.bg = make([][]string, h)
	for y := 0; y < h; y++ {
		b.ch[y] = make([]rune, w)
		b.fg[y] = make([]string, w)
		b.bg[y] = make([]string, w)
		for x := 0; x < w; x++ {
			b.ch[y][x] = ' '
		}
	}
	return b
}

func (b *cellBuf) set(x, y int, r rune, fg, bg string) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.ch[y][x] = r
	b.fg[y][x] = fg
	b.bg[y][x] = bg
}

func (b *cellBuf) fillRect(x, y, w, h int, r rune, fg, bg string) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.set(x+dx, y+dy, r, fg, bg)
		}
	}
}

func (b *cellBuf) text(x, y int, s, fg, bg string) {
	for i, r := range s {
		b.set(x+i, y, r, fg, bg)
	}
}

// render emits the buffer from fromRow down, batching runs of equal
// styling into single lipgloss spans.
func (b *cellBuf) render(fromRow int) string {
	var out strings.Builder
	for y := fromRow; y < b.h; y++ {
		x := 0
		for x < b.w {
			fg, bg := b.fg[y][x], b.bg[y][x]
			start := x
			for x < b.w && b.fg[y][x] == fg && b.bg[y][x] == bg {
				x++
			}
			run := string(b.ch[y][start:x])
			style := lipgloss.NewStyle()
			if fg != "" {
				style = style.Foreground(lipgloss.Color(fg))
			}
			if bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			if fg == "" && bg == "" {
				out.WriteString(run)
			} else {
				out.WriteString(style.Render(run))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

func (m *Model) palette() []string {
	if m.puzzle.UsesCustomArt() {
		return customPalette
	}
	return defaultPalette
}

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.sized {
		return "Setting up the board...\n"
	}

	var b strings.Builder
	b.WriteString(m.viewBar())
	b.WriteString(m.viewPlayfield())
	return b.String()
}

// viewBar renders the two control-bar rows.
func (m *Model) viewBar() string {
	var b strings.Builder

	n := m.puzzle.GridSize()
	title := fmt.Sprintf("snapgrid %dx%d", n, n)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("moves: %d  elapsed: %s", m.moves, m.elapsed())))
	if m.completed {
		b.WriteString("  ")
		b.WriteString(doneStyle.Render("completed!"))
	} else if m.status != "" {
		b.WriteString("  ")
		b.WriteString(solveStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	b.WriteString("\n")

	help := "drag tiles into the grid | g=grid size  r=reset  q=quit"
	switch {
	case m.completed:
		help = "enter=play again  g=grid size  q=quit"
	case m.puzzle.SolveRunning():
		help = "auto-solving... | f=faster  x=stop  q=quit"
	case m.puzzle.SolveVisible():
		help = "s=auto-solve | g=grid size  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// viewPlayfield paints the grid, the placed tiles and the scattered
// tiles into a buffer covering the full terminal.
func (m *Model) viewPlayfield() string {
	buf := newCellBuf(m.width, m.height)
	n := m.puzzle.GridSize()

	// Grid square with a checkered empty-cell pattern.
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			bg := emptyCellBgA
			if (row+col)%2 == 1 {
				bg = emptyCellBgB
			}
			x := gridLeft + col*cellCols
			y := barRows + row*cellRows
			buf.fillRect(x, y, cellCols, cellRows, ' ', "", bg)
			buf.set(x+cellCols/2, y+cellRows/2, '·', "240", bg)
		}
	}

	pieces := m.puzzle.Store().Pieces()
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].ZIndex < pieces[j].ZIndex
	})

	// Placed tiles first, then unplaced on top in pickup order.
	for _, p := range pieces {
		if p.Placed {
			m.drawPiece(buf, p)
		}
	}
	for _, p := range pieces {
		if !p.Placed {
			m.drawPiece(buf, p)
		}
	}

	if m.completed {
		m.drawCompletedBanner(buf)
	}

	return buf.render(barRows)
}

func (m *Model) drawPiece(buf *cellBuf, p snapgrid.Piece) {
	palette := m.palette()
	bg := palette[int(p.ID)%len(palette)]
	c0, r0 := m.pieceOrigin(p)
	buf.fillRect(c0, r0, cellCols, cellRows, ' ', "", bg)

	label := fmt.Sprintf("%d", int(p.ID)+1)
	fg := labelFg
	if p.Placed {
		fg = placedFg
	}
	buf.text(c0+(cellCols-len(label))/2, r0+cellRows/2, label, fg, bg)
}

func (m *Model) drawCompletedBanner(buf *cellBuf) {
	msg := " Puzzle completed! Press enter to play again. "
	x := (m.width - len(msg)) / 2
	y := m.height / 2
	if x < 0 {
		x = 0
	}
	buf.text(x, y, msg, "16", "82")
}

func (m *Model) elapsed() string {
	if m.completed {
		return "done"
	}
	d := time.Since(m.startedAt)
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%d:%02d", mins, int(d.Seconds())-mins*60)
}
