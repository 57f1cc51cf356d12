package idle

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultWallChance is the probability that any given tile is generated as a wall.
const DefaultWallChance = 0.4

// Float64Source is anything that hands out uniform values in [0,1).
// *rand.Rand satisfies this.
type Float64Source interface {
	Float64() float64
}

// LevelOption alters how a level is generated.
type LevelOption func(*levelOptions)

type levelOptions struct {
	src        Float64Source
	seed       int64
	wallChance float64
}

// WithRand sets the random source used to generate tiles.
// This takes precedence over WithSeed.
func WithRand(src Float64Source) LevelOption {
	return func(o *levelOptions) {
		o.src = src
	}
}

// WithSeed generates the level from a fixed seed, so the same seed & dimensions
// always give the same level.
func WithSeed(seed int64) LevelOption {
	return func(o *levelOptions) {
		o.seed = seed
	}
}

// WithWallChance overrides DefaultWallChance.
func WithWallChance(p float64) LevelOption {
	return func(o *levelOptions) {
		o.wallChance = p
	}
}

// Level is a width x height grid of tiles, indexed [x][y] (column major).
// The grid is generated once when the level is made & never regenerated.
type Level struct {
	width      int
	height     int
	seed       int64
	wallChance float64
	grid       [][]Tile
}

// NewLevel generates a new random level.
// Each tile is sampled independently: a value <= the wall chance gives a
// wall, anything else a floor. There is no guarantee floors are connected.
func NewLevel(width, height int, opts ...LevelOption) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	o := &levelOptions{wallChance: DefaultWallChance}
	for _, opt := range opts {
		opt(o)
	}
	if o.wallChance < 0 || o.wallChance > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWallChance, o.wallChance)
	}
	if o.src != nil {
		o.seed = 0
	} else {
		if o.seed == 0 {
			o.seed = time.Now().UnixNano()
		}
		o.src = rand.New(rand.NewSource(o.seed))
	}

	return &Level{
		width:      width,
		height:     height,
		seed:       o.seed,
		wallChance: o.wallChance,
		grid:       generateGrid(width, height, o.wallChance, o.src),
	}, nil
}

// NewLevelFromTiles wraps an existing [x][y] grid in a level.
// The grid must be rectangular & non empty.
func NewLevelFromTiles(grid [][]Tile) (*Level, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}

	height := len(grid[0])
	for x, col := range grid {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d tiles, expected %d", ErrInvalidDimensions, x, len(col), height)
		}
	}

	return &Level{width: len(grid), height: height, grid: grid}, nil
}

// generateGrid samples width * height tiles
func generateGrid(width, height int, wallChance float64, src Float64Source) [][]Tile {
	grid := make([][]Tile, width)
	for x := 0; x < width; x++ {
		col := make([]Tile, height)
		for y := 0; y < height; y++ {
			col[y] = generateTile(wallChance, src)
		}
		grid[x] = col
	}
	return grid
}

func generateTile(wallChance float64, src Float64Source) Tile {
	if src.Float64() <= wallChance {
		return NewTile(Wall)
	}
	return NewTile(Floor)
}

// Width in tiles
func (l *Level) Width() int {
	return l.width
}

// Height in tiles
func (l *Level) Height() int {
	return l.height
}

// Seed the level was generated from (0 if unknown, eg. an injected source or
// a level loaded from elsewhere).
func (l *Level) Seed() int64 {
	return l.seed
}

// WallChance the level was generated with (0 if unknown).
func (l *Level) WallChance() float64 {
	return l.wallChance
}

// TileMap returns the level grid, indexed [x][y].
// This is the same grid for the lifetime of the level; callers should not
// modify it.
func (l *Level) TileMap() [][]Tile {
	return l.grid
}

// At returns the tile at (x, y) and if (x, y) is on the map.
func (l *Level) At(x, y int) (Tile, bool) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return Tile{}, false
	}
	return l.grid[x][y], true
}

// Walls returns the number of wall tiles in the level
func (l *Level) Walls() int {
	count := 0
	for _, col := range l.grid {
		for _, t := range col {
			if t.Type() == Wall {
				count++
			}
		}
	}
	return count
}
