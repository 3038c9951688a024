package snapgrid

// secretTapCap is the rolling tap buffer's fixed capacity, which is
// also the length of the target sequence.
const secretTapCap = 4

// SecretTaps recognizes the hidden gesture that reveals the auto-solve
// control: tapping the grid's corner cells in the order top-left,
// bottom-left, bottom-right, top-right. Taps land in a fixed-capacity
// FIFO of cell indices (row*N + col) and the buffer is compared
// verbatim against the target after every tap. A full match toggles
// the control's visibility, so repeating the gesture hides it again.
type SecretTaps struct {
	n       int
	taps    []int
	visible bool
}

// NewSecretTaps creates a recognizer for an n×n grid.
func NewSecretTaps(n int) *SecretTaps {
	return &SecretTaps{n: n}
}

// targetSequence returns the corner-walk cell indices for an n×n grid:
// [0, 6, 8, 2] for n=3 and [0, 12, 15, 3] for n=4.
func targetSequence(n int) [secretTapCap]int {
	return [secretTapCap]int{0, n * (n - 1), n*n - 1, n - 1}
}

// Tap records a tap on a grid cell and reports whether it toggled the
// control's visibility. Taps are accepted regardless of whether the
// cell holds a placed piece; a mismatching buffer is never an error,
// just no toggle.
func (s *SecretTaps) Tap(row, col int) bool {
	s.taps = append(s.taps, row*s.n+col)
	if len(s.taps) > secretTapCap {
		s.taps = s.taps[len(s.taps)-secretTapCap:]
	}
	if len(s.taps) < secretTapCap {
		return false
	}
	target := targetSequence(s.n)
	for i, tap := range s.taps {
		if tap != target[i] {
			return false
		}
	}
	s.visible = !s.visible
	return true
}

// Visible reports whether the auto-solve control is currently shown.
func (s *SecretTaps) Visible() bool {
	return s.visible
}

// Reset empties the tap buffer and hides the control.
func (s *SecretTaps) Reset() {
	s.taps = nil
	s.visible = false
}

// setGridSize switches the recognizer to a new grid size, discarding
// any partial gesture.
func (s *SecretTaps) setGridSize(n int) {
	s.n = n
	s.taps = nil
}
