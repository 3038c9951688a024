// Package snapgrid implements the interaction engine for a drag-and-snap
// jigsaw puzzle: an image cut into an N×N grid of tiles that the player
// drags from a scattered working area into their correct grid cells.
//
// # Features
//
//   - Piece store with stable ids and pickup z-ordering
//   - Pure coordinate resolution across working, screen and grid frames
//   - Drag clamping with a "rubber wall" feel at the play-area edges
//   - Snap decision requiring both the correct cell and proximity to
//     its center
//   - Tick-driven auto-solve sequencer with live speed control and
//     cooperative cancellation
//   - Hidden corner-tap gesture that toggles the auto-solve control
//
// # Quick Start
//
// Create a puzzle, feed it layout geometry, and route input events:
//
//	p, err := snapgrid.New(snapgrid.WithGridSize(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.SetGeometry(gridRect, workingRect, barBottomY)
//	p.Initialize()
//
//	p.SetCompletedCallback(func() {
//	    fmt.Println("puzzle complete!")
//	})
//
//	// Drag events arrive in working-area-local coordinates.
//	p.DragStart(id)
//	p.DragMove(id, point)
//	snapped := p.DragEnd(id, point)
//
// # Auto-Solve
//
// The sequencer is an explicit state machine: the caller schedules each
// step after the delay Advance reports, so it can be single-stepped in
// tests and cancelled between any write and its commit:
//
//	p.StartSolve()
//	for {
//	    delay, done := p.AdvanceSolve()
//	    if done {
//	        break
//	    }
//	    time.Sleep(delay) // a real UI schedules a timer instead
//	}
//
// The engine never renders and holds no UI dependencies; presentation
// layers subscribe through the callback setters and read the Store.
package snapgrid
