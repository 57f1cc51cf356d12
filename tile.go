package idle

import (
	"fmt"
)

// TileType is the kind of a single grid cell.
type TileType int

const (
	Floor TileType = iota
	Wall
)

func (t TileType) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Tile is one cell of a level. It can't be changed once created.
type Tile struct {
	kind TileType
}

// NewTile returns a tile of the given type
func NewTile(t TileType) Tile {
	return Tile{kind: t}
}

// Type of this tile
func (t Tile) Type() TileType {
	return t.kind
}
