package snapgrid

import "testing"

// tapCells feeds (row, col) pairs derived from cell indices.
func tapCells(s *SecretTaps, n int, cells []int) bool {
	toggled := false
	for _, c := range cells {
		if s.Tap(c/n, c%n) {
			toggled = true
		}
	}
	return toggled
}

func TestSecretSequence3x3Toggles(t *testing.T) {
	s := NewSecretTaps(3)
	if !tapCells(s, 3, []int{0, 6, 8, 2}) {
		t.Error("corner walk should toggle the control")
	}
	if !s.Visible() {
		t.Error("control should be visible after the gesture")
	}
}

func TestSecretSequence4x4Toggles(t *testing.T) {
	s := NewSecretTaps(4)
	if !tapCells(s, 4, []int{0, 12, 15, 3}) {
		t.Error("corner walk should toggle on a 4x4 grid")
	}
}

func TestSecretWrongCellNeverToggles(t *testing.T) {
	s := NewSecretTaps(3)
	if tapCells(s, 3, []int{0, 6, 8, 5}) {
		t.Error("a single wrong cell should never toggle")
	}
	if s.Visible() {
		t.Error("control should stay hidden")
	}
}

func TestSecretRotatedOrderNeverToggles(t *testing.T) {
	s := NewSecretTaps(3)
	if tapCells(s, 3, []int{6, 8, 2, 0}) {
		t.Error("the gesture is order-sensitive; a rotation must not match")
	}
}

func TestSecretDoubleSequenceTogglesBack(t *testing.T) {
	s := NewSecretTaps(3)
	tapCells(s, 3, []int{0, 6, 8, 2})
	tapCells(s, 3, []int{0, 6, 8, 2})
	if s.Visible() {
		t.Error("repeating the gesture should hide the control again")
	}
}

func TestSecretRollingBufferRecovers(t *testing.T) {
	s := NewSecretTaps(3)
	// Noise first; the FIFO drops the oldest taps, so a clean gesture
	// afterwards still matches.
	tapCells(s, 3, []int{4, 4, 4, 4, 4})
	if !tapCells(s, 3, []int{0, 6, 8, 2}) {
		t.Error("a clean gesture after noise should still toggle")
	}
}

func TestSecretResetClearsBufferAndHides(t *testing.T) {
	s := NewSecretTaps(3)
	tapCells(s, 3, []int{0, 6, 8, 2})
	s.Reset()
	if s.Visible() {
		t.Error("reset should hide the control")
	}
	// The buffer is empty, so finishing a stale prefix must not match.
	if tapCells(s, 3, []int{8, 2}) {
		t.Error("reset should clear any partial gesture")
	}
}

func TestSecretShortBufferNeverMatches(t *testing.T) {
	s := NewSecretTaps(3)
	if tapCells(s, 3, []int{0, 6, 8}) {
		t.Error("a partial gesture should not toggle")
	}
}
