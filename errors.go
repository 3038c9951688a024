package snapgrid

import "errors"

// Sentinel errors for the snapgrid package.
var (
	// Configuration errors
	ErrBadGridSize = errors.New("snapgrid: grid size must be 3 or 4")

	// State errors
	ErrNoGeometry   = errors.New("snapgrid: layout geometry not yet known")
	ErrUnknownPiece = errors.New("snapgrid: no piece with that id")
)
