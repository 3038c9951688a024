package snapgrid

import "time"

// Auto-solve pacing. Start always resets to the slow rate; the fast
// rate is switched in live via SetInterval and takes effect on the
// next step's wait.
const (
	DefaultSolveInterval = 800 * time.Millisecond
	FastSolveInterval    = 200 * time.Millisecond
)

// Solver animates the remaining unplaced pieces into position, one at
// a time in store order. It is an explicit tick-driven state machine:
// each Advance call performs one transition and reports how long the
// caller should wait before the next call, which keeps the event loop
// responsive and lets tests single-step without real time.
type Solver struct {
	store *Store
	geo   Geometry

	queue      []PieceID
	idx        int
	pending    PieceID
	hasPending bool
	finishing  bool
	running    bool
	interval   time.Duration
	slow       time.Duration
	done       func()
}

// NewSolver creates a solver over a store.
func NewSolver(store *Store) *Solver {
	return &Solver{
		store:    store,
		interval: DefaultSolveInterval,
		slow:     DefaultSolveInterval,
	}
}

// SetSlowInterval changes the pace every run starts at.
func (s *Solver) SetSlowInterval(d time.Duration) {
	if d > 0 {
		s.slow = d
	}
}

// SetDoneCallback sets a callback fired when a run finishes on its own
// (not when stopped externally).
func (s *Solver) SetDoneCallback(cb func()) {
	s.done = cb
}

// Running reports whether a run is active.
func (s *Solver) Running() bool {
	return s.running
}

// Interval returns the current per-piece pace.
func (s *Solver) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the per-piece pace mid-run. The change applies
// to the next step's wait, not retroactively.
func (s *Solver) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Start snapshots the currently unplaced pieces in store order and
// begins a run at the default pace. The snapshot is not re-evaluated
// mid-run. Starting requires usable geometry and no active run.
func (s *Solver) Start(g Geometry) bool {
	if s.running || !g.Ready() {
		return false
	}
	s.geo = g
	s.queue = s.store.Unplaced()
	s.idx = 0
	s.hasPending = false
	s.finishing = false
	s.interval = s.slow
	s.running = true
	return true
}

// Stop cancels the run cooperatively. The flag is checked at the top
// of each step: a piece whose position has already been written but
// not yet committed stays where it was written and is never placed.
func (s *Solver) Stop() {
	s.running = false
}

// Advance performs one sequencer transition. It returns the delay the
// caller should wait before calling Advance again, and done=true when
// the run has ended (completed or cancelled). Each piece takes exactly
// one interval: its target position is written, and one interval later
// the placement is committed and the next piece begins.
func (s *Solver) Advance() (time.Duration, bool) {
	if !s.running {
		// Cancelled between a write and its commit: drop the pending
		// piece without placing it.
		s.hasPending = false
		s.finishing = false
		return 0, true
	}
	if s.hasPending {
		s.store.SetPlaced(s.pending)
		s.hasPending = false
		s.idx++
	}
	if s.finishing {
		s.running = false
		s.finishing = false
		if s.done != nil {
			s.done()
		}
		return 0, true
	}
	if s.idx >= len(s.queue) {
		// One trailing interval before the run ends, so the final
		// snap animation can play out.
		s.finishing = true
		return s.interval, false
	}
	id := s.queue[s.idx]
	if p, ok := s.store.ByID(id); ok {
		s.store.SetPosition(id, s.geo.PieceTarget(p.Row, p.Col))
		s.pending = id
		s.hasPending = true
	} else {
		s.idx++
	}
	return s.interval, false
}
