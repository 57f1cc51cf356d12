package idle

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlInsertLevel = `INSERT INTO levels (width, height, seed, wall_chance, created) VALUES (:width, :height, :seed, :wall_chance, :created);`
	sqlInsertTiles = `INSERT INTO tiles (level_id, x, y, type) VALUES (:level_id, :x, :y, :type)`
	sqlGetLevel    = `SELECT id, width, height, seed, wall_chance, created FROM levels WHERE id=:id LIMIT 1;`
	sqlGetTiles    = `SELECT level_id, x, y, type FROM tiles WHERE level_id=:id;`
	sqlListLevels  = `SELECT id, width, height, seed, wall_chance, created FROM levels ORDER BY id ASC;`

	// tiles per insert, each tile binds 4 variables & sqlite caps a
	// statement at 32766 (999 on older builds)
	tileBatchSize = 200
)

// ArchivedLevel describes a level held in an archive
type ArchivedLevel struct {
	ID         int64     `db:"id"`
	Width      int       `db:"width"`
	Height     int       `db:"height"`
	Seed       int64     `db:"seed"`
	WallChance float64   `db:"wall_chance"`
	Created    time.Time `db:"created"`
}

// Archive stores generated levels in an sqlite database so they can be
// rendered (or exported) again later.
type Archive struct {
	filename string
	db       *sqlx.DB
}

// OpenArchive given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenArchive(fname string) (*Archive, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	a := &Archive{db: db, filename: fname}
	err = a.init()
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// Filename returns the path to the archive on disk
func (a *Archive) Filename() string {
	return a.filename
}

// Close the underlying database
func (a *Archive) Close() error {
	return a.db.Close()
}

// Save the given level, returning it's new id
func (a *Archive) Save(l *Level) (int64, error) {
	txn, err := a.db.Beginx()
	if err != nil {
		return 0, err
	}

	res, err := txn.NamedExec(sqlInsertLevel, ArchivedLevel{
		Width:      l.Width(),
		Height:     l.Height(),
		Seed:       l.Seed(),
		WallChance: l.WallChance(),
		Created:    time.Now().UTC(),
	})
	if err != nil {
		txn.Rollback()
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		txn.Rollback()
		return 0, err
	}

	// one row per tile, inserted in batches of at most tileBatchSize
	rows := make([]dbTile, 0, tileBatchSize)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		_, err := txn.NamedExec(sqlInsertTiles, rows)
		rows = rows[:0]
		return err
	}
	for x, col := range l.TileMap() {
		for y, t := range col {
			rows = append(rows, dbTile{LevelID: id, X: x, Y: y, Type: int(t.Type())})
			if len(rows) < tileBatchSize {
				continue
			}
			if err = flush(); err != nil {
				txn.Rollback()
				return 0, err
			}
		}
	}
	if err = flush(); err != nil {
		txn.Rollback()
		return 0, err
	}

	return id, txn.Commit()
}

// Info returns the description of level `id`
func (a *Archive) Info(id int64) (*ArchivedLevel, error) {
	rows, err := a.db.NamedQuery(sqlGetLevel, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
	}

	info := &ArchivedLevel{}
	err = rows.StructScan(info)
	return info, err
}

// Load level `id` from the archive
func (a *Archive) Load(id int64) (*Level, error) {
	info, err := a.Info(id)
	if err != nil {
		return nil, err
	}

	grid := make([][]Tile, info.Width)
	for x := range grid {
		grid[x] = make([]Tile, info.Height)
	}
	seen := make([][]bool, info.Width)
	for x := range seen {
		seen[x] = make([]bool, info.Height)
	}

	rows, err := a.db.NamedQuery(sqlGetTiles, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	count := 0
	t := dbTile{}
	for rows.Next() {
		err = rows.StructScan(&t)
		if err != nil {
			return nil, err
		}
		if t.X < 0 || t.X >= info.Width || t.Y < 0 || t.Y >= info.Height {
			return nil, fmt.Errorf("level %d has tile (%d,%d) outside %dx%d", id, t.X, t.Y, info.Width, info.Height)
		}
		kind := TileType(t.Type)
		if _, err := TileColor(kind); err != nil {
			return nil, err
		}
		grid[t.X][t.Y] = NewTile(kind)
		if !seen[t.X][t.Y] {
			seen[t.X][t.Y] = true
			count++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if count != info.Width*info.Height {
		return nil, fmt.Errorf("level %d is missing tiles: have %d of %d", id, count, info.Width*info.Height)
	}

	l, err := NewLevelFromTiles(grid)
	if err != nil {
		return nil, err
	}
	l.seed = info.Seed
	l.wallChance = info.WallChance
	return l, nil
}

// List all archived levels, oldest first
func (a *Archive) List() ([]*ArchivedLevel, error) {
	levels := []*ArchivedLevel{}
	err := a.db.Select(&levels, sqlListLevels)
	if errors.Is(err, sql.ErrNoRows) {
		return levels, nil
	}
	return levels, err
}

// init creates some DB tables for us if they don't exist
func (a *Archive) init() error {
	createLevels := `CREATE TABLE IF NOT EXISTS levels(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		wall_chance REAL NOT NULL,
		created TIMESTAMP NOT NULL
	    );`
	_, err := a.db.Exec(createLevels)
	if err != nil {
		return err
	}

	createTiles := `CREATE TABLE IF NOT EXISTS tiles(
		level_id INTEGER NOT NULL REFERENCES levels(id),
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		type INTEGER NOT NULL,
		PRIMARY KEY (level_id, x, y)
	    );`
	_, err = a.db.Exec(createTiles)
	return err
}

// dbTile encodes a single tile of an archived level
type dbTile struct {
	LevelID int64 `db:"level_id"`
	X       int   `db:"x"`
	Y       int   `db:"y"`
	Type    int   `db:"type"`
}
