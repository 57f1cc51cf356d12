package idle

import (
	"fmt"
)

const (
	// ColorFloor is the fill style of floor tiles (light grey)
	ColorFloor = "#ccc"

	// ColorWall is the fill style of wall tiles (black)
	ColorWall = "#000"
)

// TileColor returns the fill style for a tile type.
func TileColor(t TileType) (string, error) {
	switch t {
	case Floor:
		return ColorFloor, nil
	case Wall:
		return ColorWall, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownTileType, t)
}

// CanvasRenderer paints a game's level onto a surface, one filled rectangle
// per tile.
type CanvasRenderer struct {
	ctx  Context2D
	game *Game

	// in pixels, not rounded
	tileWidth  float64
	tileHeight float64
}

// NewCanvasRenderer binds a renderer to the given surface & game.
// Tiles are sized so the level exactly covers the surface.
func NewCanvasRenderer(s Surface, g *Game) *CanvasRenderer {
	level := g.Level()
	return &CanvasRenderer{
		ctx:        s.Context(),
		game:       g,
		tileWidth:  float64(s.Width()) / float64(level.Width()),
		tileHeight: float64(s.Height()) / float64(level.Height()),
	}
}

// TileSize returns the width & height of a single tile in pixels
func (r *CanvasRenderer) TileSize() (float64, float64) {
	return r.tileWidth, r.tileHeight
}

// Render draws the whole level.
func (r *CanvasRenderer) Render() error {
	return r.renderLevel()
}

// renderLevel walks the grid column by column
func (r *CanvasRenderer) renderLevel() error {
	tileMap := r.game.Level().TileMap()
	for x, col := range tileMap {
		for y, t := range col {
			if err := r.renderTile(t, x, y); err != nil {
				return fmt.Errorf("rendering tile (%d,%d): %w", x, y, err)
			}
		}
	}
	return nil
}

func (r *CanvasRenderer) renderTile(t Tile, x, y int) error {
	style, err := TileColor(t.Type())
	if err != nil {
		return err
	}

	px, py := r.coordToPixels(x, y)
	r.ctx.SetFillStyle(style)
	r.ctx.FillRect(px, py, r.tileWidth, r.tileHeight)
	return nil
}

// coordToPixels gives the top left pixel of tile (x,y)
func (r *CanvasRenderer) coordToPixels(x, y int) (float64, float64) {
	return float64(x) * r.tileWidth, float64(y) * r.tileHeight
}
