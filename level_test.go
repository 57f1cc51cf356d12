package idle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelDimensions(t *testing.T) {
	cases := []struct {
		width, height int
	}{
		{1, 1},
		{40, 40},
		{3, 17},
		{17, 3},
	}

	for _, c := range cases {
		l, err := NewLevel(c.width, c.height)
		require.Nil(t, err)

		assert.Equal(t, c.width, l.Width())
		assert.Equal(t, c.height, l.Height())

		tm := l.TileMap()
		assert.Equal(t, c.width, len(tm))
		for _, col := range tm {
			assert.Equal(t, c.height, len(col))
			for _, tile := range col {
				assert.Contains(t, []TileType{Floor, Wall}, tile.Type())
			}
		}
	}
}

func TestNewLevelInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		l, err := NewLevel(dims[0], dims[1])
		assert.Nil(t, l)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestNewLevelInvalidWallChance(t *testing.T) {
	_, err := NewLevel(2, 2, WithWallChance(1.5))
	assert.ErrorIs(t, err, ErrInvalidWallChance)

	_, err = NewLevel(2, 2, WithWallChance(-0.1))
	assert.ErrorIs(t, err, ErrInvalidWallChance)
}

func TestNewLevelThreshold(t *testing.T) {
	// a sample exactly on the threshold is a wall
	l, err := NewLevel(3, 1, WithRand(&scriptedSource{values: []float64{0.4, 0.41, 0}}))
	require.Nil(t, err)

	tm := l.TileMap()
	assert.Equal(t, Wall, tm[0][0].Type())
	assert.Equal(t, Floor, tm[1][0].Type())
	assert.Equal(t, Wall, tm[2][0].Type())
}

func TestNewLevelColumnMajor(t *testing.T) {
	l, err := checkerLevel()
	require.Nil(t, err)

	tm := l.TileMap()
	assert.Equal(t, Wall, tm[0][0].Type())
	assert.Equal(t, Floor, tm[0][1].Type())
	assert.Equal(t, Floor, tm[1][0].Type())
	assert.Equal(t, Wall, tm[1][1].Type())
	assert.Equal(t, 2, l.Walls())
}

func TestWallFraction(t *testing.T) {
	l, err := NewLevel(1000, 100, WithRand(rand.New(rand.NewSource(42))))
	require.Nil(t, err)

	fraction := float64(l.Walls()) / float64(l.Width()*l.Height())
	assert.InDelta(t, DefaultWallChance, fraction, 0.01)
}

func TestWallChanceOption(t *testing.T) {
	walls, err := NewLevel(10, 10, WithWallChance(1))
	require.Nil(t, err)
	assert.Equal(t, 100, walls.Walls())

	floors, err := NewLevel(10, 10, WithWallChance(0), WithRand(&scriptedSource{values: []float64{0.5, 0.99}}))
	require.Nil(t, err)
	assert.Equal(t, 0, floors.Walls())
}

func TestTileMapStable(t *testing.T) {
	l, err := NewLevel(20, 20)
	require.Nil(t, err)

	first := l.TileMap()
	second := l.TileMap()
	assert.Equal(t, first, second)
	assert.Same(t, &first[0][0], &second[0][0])
}

func TestLevelsIndependent(t *testing.T) {
	a, err := NewLevel(2, 2, WithRand(&scriptedSource{values: []float64{0}}))
	require.Nil(t, err)
	b, err := NewLevel(3, 3, WithRand(&scriptedSource{values: []float64{0.9}}))
	require.Nil(t, err)

	// making b must not change a
	assert.Equal(t, 2, len(a.TileMap()))
	assert.Equal(t, 4, a.Walls())
	assert.Equal(t, 0, b.Walls())
}

func TestWithSeedDeterministic(t *testing.T) {
	a, err := NewLevel(15, 9, WithSeed(1234))
	require.Nil(t, err)
	b, err := NewLevel(15, 9, WithSeed(1234))
	require.Nil(t, err)

	assert.Equal(t, a.TileMap(), b.TileMap())
	assert.Equal(t, int64(1234), a.Seed())
	assert.Equal(t, DefaultWallChance, a.WallChance())
}

func TestLevelAt(t *testing.T) {
	l, err := checkerLevel()
	require.Nil(t, err)

	tile, ok := l.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, Floor, tile.Type())

	_, ok = l.At(2, 0)
	assert.False(t, ok)
	_, ok = l.At(0, -1)
	assert.False(t, ok)
}

func TestNewLevelFromTiles(t *testing.T) {
	l, err := NewLevelFromTiles([][]Tile{
		{NewTile(Wall), NewTile(Floor), NewTile(Floor)},
		{NewTile(Floor), NewTile(Floor), NewTile(Floor)},
	})
	require.Nil(t, err)
	assert.Equal(t, 2, l.Width())
	assert.Equal(t, 3, l.Height())
	assert.Equal(t, 1, l.Walls())

	_, err = NewLevelFromTiles(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewLevelFromTiles([][]Tile{
		{NewTile(Wall)},
		{NewTile(Wall), NewTile(Floor)},
	})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestTileTypeString(t *testing.T) {
	assert.Equal(t, "floor", Floor.String())
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "TileType(7)", TileType(7).String())
}
