package idle

import (
	"errors"
)

var (
	// ErrInvalidDimensions is returned when a level is asked for with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("level dimensions must be positive")

	// ErrInvalidWallChance is returned for a wall chance outside [0,1]
	ErrInvalidWallChance = errors.New("wall chance must be within [0,1]")

	// ErrUnknownTileType is returned when a tile has no entry in the colour table
	ErrUnknownTileType = errors.New("unknown tile type")

	// ErrLevelNotFound is returned by the archive for an unknown level id
	ErrLevelNotFound = errors.New("level not found")
)
