package idle

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	a, err := OpenArchive(filepath.Join(t.TempDir(), "levels.sqlite"))
	require.Nil(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchiveSaveLoad(t *testing.T) {
	a := openTestArchive(t)

	l, err := NewLevel(12, 7, WithSeed(77), WithWallChance(0.3))
	require.Nil(t, err)

	id, err := a.Save(l)
	require.Nil(t, err)

	got, err := a.Load(id)
	require.Nil(t, err)

	assert.Equal(t, l.Width(), got.Width())
	assert.Equal(t, l.Height(), got.Height())
	assert.Equal(t, l.TileMap(), got.TileMap())
	assert.Equal(t, int64(77), got.Seed())
	assert.Equal(t, 0.3, got.WallChance())
}

func TestArchiveList(t *testing.T) {
	a := openTestArchive(t)

	levels, err := a.List()
	require.Nil(t, err)
	assert.Equal(t, 0, len(levels))

	small, err := checkerLevel()
	require.Nil(t, err)
	big, err := NewLevel(40, 40, WithSeed(5))
	require.Nil(t, err)

	id1, err := a.Save(small)
	require.Nil(t, err)
	id2, err := a.Save(big)
	require.Nil(t, err)

	levels, err = a.List()
	require.Nil(t, err)
	require.Equal(t, 2, len(levels))
	assert.Equal(t, id1, levels[0].ID)
	assert.Equal(t, 2, levels[0].Width)
	assert.Equal(t, id2, levels[1].ID)
	assert.Equal(t, int64(5), levels[1].Seed)
	assert.False(t, levels[1].Created.IsZero())

	info, err := a.Info(id2)
	require.Nil(t, err)
	assert.Equal(t, 40, info.Height)
}

func TestArchiveNotFound(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Load(404)
	assert.ErrorIs(t, err, ErrLevelNotFound)

	_, err = a.Info(404)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestArchiveReopen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "levels.sqlite")

	a, err := OpenArchive(fname)
	require.Nil(t, err)
	assert.Equal(t, fname, a.Filename())

	l, err := NewLevel(3, 3, WithSeed(8))
	require.Nil(t, err)
	id, err := a.Save(l)
	require.Nil(t, err)
	require.Nil(t, a.Close())

	b, err := OpenArchive(fname)
	require.Nil(t, err)
	defer b.Close()

	got, err := b.Load(id)
	require.Nil(t, err)
	assert.Equal(t, l.TileMap(), got.TileMap())
}

func TestArchiveTallLevel(t *testing.T) {
	a := openTestArchive(t)

	// more tiles in one column than sqlite allows bind variables in one statement
	l, err := NewLevel(1, 9001, WithSeed(11))
	require.Nil(t, err)

	id, err := a.Save(l)
	require.Nil(t, err)

	got, err := a.Load(id)
	require.Nil(t, err)
	assert.Equal(t, 9001, got.Height())
	assert.Equal(t, l.TileMap(), got.TileMap())
}
