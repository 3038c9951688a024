package snapgrid

import (
	"testing"
	"time"
)

func newSolverFixture(t *testing.T) (*Solver, *Store, Geometry) {
	t.Helper()
	s := NewStore()
	s.ReplaceAll(gridPieces(3))
	return NewSolver(s), s, testGeometry(3)
}

func TestSolverPlacesInSnapshotOrder(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	if !sv.Start(g) {
		t.Fatal("Start should succeed with ready geometry")
	}

	var order []PieceID
	placed := map[PieceID]bool{}
	for {
		delay, done := sv.Advance()
		if done {
			break
		}
		if delay != DefaultSolveInterval {
			t.Errorf("step delay = %v, want %v", delay, DefaultSolveInterval)
		}
		// Record commits: at most one new placement per step.
		var stepPlaced []PieceID
		for _, p := range s.Pieces() {
			if p.Placed && !placed[p.ID] {
				placed[p.ID] = true
				stepPlaced = append(stepPlaced, p.ID)
			}
		}
		if len(stepPlaced) > 1 {
			t.Fatalf("placed %d pieces in one interval, want at most 1", len(stepPlaced))
		}
		order = append(order, stepPlaced...)
	}

	if len(order) != 9 {
		t.Fatalf("placed %d pieces, want 9", len(order))
	}
	for i, id := range order {
		if id != PieceID(i) {
			t.Errorf("placement %d was piece %d, want %d (store order)", i, id, i)
		}
	}
	if sv.Running() {
		t.Error("solver should stop after the run completes")
	}
}

func TestSolverWritesTargetPositionBeforeCommit(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	sv.Start(g)
	sv.Advance() // writes piece 0's position, commit still pending
	p, _ := s.ByID(0)
	if p.Placed {
		t.Error("piece should not be committed until the interval elapses")
	}
	if p.Position != g.PieceTarget(0, 0) {
		t.Errorf("written position = %+v, want cell center %+v", p.Position, g.PieceTarget(0, 0))
	}
}

func TestSolverCancelBetweenWriteAndCommit(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	sv.Start(g)
	sv.Advance() // piece 0 written, pending
	sv.Stop()
	if _, done := sv.Advance(); !done {
		t.Error("cancelled run should halt at the next step")
	}
	p0, _ := s.ByID(0)
	if p0.Placed {
		t.Error("pending piece must stay uncommitted after a cancellation")
	}
	p1, _ := s.ByID(1)
	if p1.Position != (Point{}) {
		t.Error("cancellation must not process the next piece")
	}
}

func TestSolverSkipsAlreadyPlaced(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	s.SetPlaced(0)
	s.SetPlaced(3)
	sv.Start(g)
	steps := 0
	for {
		_, done := sv.Advance()
		if done {
			break
		}
		if steps++; steps > 20 {
			t.Fatal("solver did not terminate")
		}
	}
	// 7 unplaced pieces: one write step each, one trailing interval,
	// one terminal transition.
	if steps != 8 {
		t.Errorf("took %d delayed steps, want 8", steps)
	}
	if !s.AllPlaced() {
		t.Error("every piece should be placed after the run")
	}
}

func TestSolverSpeedChangeTakesEffectNextStep(t *testing.T) {
	sv, _, g := newSolverFixture(t)
	sv.Start(g)
	if delay, _ := sv.Advance(); delay != DefaultSolveInterval {
		t.Errorf("first delay = %v, want the slow default", delay)
	}
	sv.SetInterval(FastSolveInterval)
	if delay, _ := sv.Advance(); delay != FastSolveInterval {
		t.Errorf("post-change delay = %v, want %v", delay, FastSolveInterval)
	}
}

func TestSolverStartResetsToSlowPace(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	sv.Start(g)
	sv.SetInterval(FastSolveInterval)
	sv.Stop()
	sv.Advance()
	// A fresh run always begins at the slow rate.
	s.ReplaceAll(gridPieces(3))
	sv.Start(g)
	if sv.Interval() != DefaultSolveInterval {
		t.Errorf("restarted interval = %v, want %v", sv.Interval(), DefaultSolveInterval)
	}
}

func TestSolverEmptyQueueFinishesAfterOneInterval(t *testing.T) {
	sv, s, g := newSolverFixture(t)
	for id := 0; id < 9; id++ {
		s.SetPlaced(PieceID(id))
	}
	sv.Start(g)
	delay, done := sv.Advance()
	if done || delay != DefaultSolveInterval {
		t.Errorf("empty run should wait one interval first: delay=%v done=%v", delay, done)
	}
	if _, done := sv.Advance(); !done {
		t.Error("empty run should finish on the second transition")
	}
}

func TestSolverDoneCallbackOnlyOnNaturalFinish(t *testing.T) {
	sv, _, g := newSolverFixture(t)
	fired := 0
	sv.SetDoneCallback(func() { fired++ })

	sv.Start(g)
	sv.Advance()
	sv.Stop()
	sv.Advance()
	if fired != 0 {
		t.Error("cancellation should not fire the done callback")
	}
}

func TestSolverRejectsStartWithoutGeometry(t *testing.T) {
	sv, _, _ := newSolverFixture(t)
	if sv.Start(Geometry{}) {
		t.Error("Start before the first layout pass should be refused")
	}
}

func TestSolverIgnoresNonPositiveInterval(t *testing.T) {
	sv, _, _ := newSolverFixture(t)
	sv.SetInterval(-time.Second)
	if sv.Interval() != DefaultSolveInterval {
		t.Error("non-positive intervals should be ignored")
	}
}
