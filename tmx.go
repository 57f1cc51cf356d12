/* this file reads & writes levels as TMX (doc.mapeditor.org/en/stable/) maps.

We only need a small part of the format: one orthogonal map, one tileset with
an image per tile type & one CSV encoded tile layer named "0".
*/
package idle

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

const (
	tmxOrientation = "orthogonal"
	tmxTilesetName = "idle"
	tmxLayerName   = "0"
	tmxFirstGID    = 1

	// property names set on the map
	propSeed       = "seed"
	propWallChance = "wall_chance"
)

// tileSources maps tile types to the image used for them in a tileset
var tileSources = map[TileType]string{
	Floor: "floor.png",
	Wall:  "wall.png",
}

// tmxMap is the root TMX structure.
type tmxMap struct {
	XMLName     xml.Name       `xml:"map"`
	Orientation string         `xml:"orientation,attr"`
	Width       int            `xml:"width,attr"`      // in tiles
	Height      int            `xml:"height,attr"`     // in tiles
	TileWidth   int            `xml:"tilewidth,attr"`  // in pixels
	TileHeight  int            `xml:"tileheight,attr"` // in pixels
	Properties  []*tmxProperty `xml:"properties>property"`
	Tilesets    []*tmxTileset  `xml:"tileset"`
	Layers      []*tmxLayer    `xml:"layer"`
}

type tmxProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"` // string (default), int, float
}

type tmxTileset struct {
	FirstGID   uint       `xml:"firstgid,attr"`
	Name       string     `xml:"name,attr"`
	TileWidth  int        `xml:"tilewidth,attr"`
	TileHeight int        `xml:"tileheight,attr"`
	Tiles      []*tmxTile `xml:"tile"`
}

type tmxTile struct {
	ID    uint      `xml:"id,attr"`
	Image *tmxImage `xml:"image"`
}

type tmxImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type tmxLayer struct {
	ID     uint    `xml:"id,attr"`
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   tmxData `xml:"data"`
}

type tmxData struct {
	Encoding string `xml:"encoding,attr"`
	RawData  []byte `xml:",innerxml"`
}

// EncodeTMX writes the level as a TMX map where each tile is drawn
// tileWidth x tileHeight pixels.
func (l *Level) EncodeTMX(w io.Writer, tileWidth, tileHeight int) error {
	ts := &tmxTileset{
		FirstGID:   tmxFirstGID,
		Name:       tmxTilesetName,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
	for _, t := range []TileType{Floor, Wall} {
		ts.Tiles = append(ts.Tiles, &tmxTile{
			ID:    uint(t),
			Image: &tmxImage{Source: tileSources[t], Width: tileWidth, Height: tileHeight},
		})
	}

	// the reverse of x, y = index % width, index / width
	gids := make([]uint, l.width*l.height)
	for x, col := range l.grid {
		for y, t := range col {
			gids[y*l.width+x] = uint(t.Type()) + tmxFirstGID
		}
	}

	m := &tmxMap{
		Orientation: tmxOrientation,
		Width:       l.width,
		Height:      l.height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Properties: []*tmxProperty{
			{Name: propSeed, Value: strconv.FormatInt(l.seed, 10), Type: "int"},
			{Name: propWallChance, Value: strconv.FormatFloat(l.wallChance, 'f', -1, 64), Type: "float"},
		},
		Tilesets: []*tmxTileset{ts},
		Layers: []*tmxLayer{{
			ID:     1,
			Name:   tmxLayerName,
			Width:  l.width,
			Height: l.height,
			Data:   tmxData{Encoding: "csv", RawData: encodeCSV(l.width, l.height, gids)},
		}},
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	return enc.Encode(m)
}

// WriteTMX writes the level as a TMX map to the given file
func (l *Level) WriteTMX(fname string, tileWidth, tileHeight int) error {
	buff := bytes.Buffer{}
	err := l.EncodeTMX(&buff, tileWidth, tileHeight)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buff.Bytes(), 0644)
}

// DecodeTMX reads a level from a TMX map written by EncodeTMX.
// Every tile in layer "0" must be a floor or wall.
func DecodeTMX(r io.Reader) (*Level, error) {
	m := &tmxMap{}
	if err := xml.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}

	if len(m.Tilesets) != 1 {
		return nil, fmt.Errorf("expected 1 tileset, found %d", len(m.Tilesets))
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, m.Width, m.Height)
	}

	// gid -> tile type via each tile's image
	ts := m.Tilesets[0]
	types := map[uint]TileType{}
	for _, t := range ts.Tiles {
		if t.Image == nil {
			continue
		}
		for kind, src := range tileSources {
			if src == t.Image.Source {
				types[t.ID+ts.FirstGID] = kind
			}
		}
	}

	var layer *tmxLayer
	for _, tl := range m.Layers {
		if tl.Name == tmxLayerName {
			layer = tl
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("tile layer %q not found", tmxLayerName)
	}

	gids, err := decodeCSV(layer.Data.RawData)
	if err != nil {
		return nil, err
	}
	// compare without multiplying, the declared size may be huge
	if len(gids)%m.Width != 0 || len(gids)/m.Width != m.Height {
		return nil, fmt.Errorf("expected %dx%d tiles, found %d", m.Width, m.Height, len(gids))
	}

	grid := make([][]Tile, m.Width)
	for x := range grid {
		grid[x] = make([]Tile, m.Height)
	}
	for index, gid := range gids {
		kind, ok := types[gid]
		if !ok {
			return nil, fmt.Errorf("%w: gid %d at index %d", ErrUnknownTileType, gid, index)
		}
		grid[index%m.Width][index/m.Width] = NewTile(kind)
	}

	l, err := NewLevelFromTiles(grid)
	if err != nil {
		return nil, err
	}

	for _, p := range m.Properties {
		switch p.Name {
		case propSeed:
			l.seed, err = strconv.ParseInt(p.Value, 10, 64)
		case propWallChance:
			l.wallChance, err = strconv.ParseFloat(p.Value, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("bad map property %s=%q: %w", p.Name, p.Value, err)
		}
	}

	return l, nil
}

// OpenTMX reads a level from a TMX file on disk
func OpenTMX(fname string) (*Level, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTMX(f)
}

// encodeCSV turns row major tile ids into TMX csv data
func encodeCSV(width, height int, in []uint) []byte {
	values := make([]string, height)

	for row := 0; row < height; row++ {
		csvrow := make([]string, width)
		for col := 0; col < width; col++ {
			csvrow[col] = strconv.Itoa(int(in[row*width+col]))
		}
		values[row] = strings.Join(csvrow, ",")
	}

	return []byte("\n" + strings.Join(values, ",\n") + "\n")
}

// decodeCSV reads TMX csv data, ignoring whitespace
func decodeCSV(raw []byte) ([]uint, error) {
	cleaner := func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}

	str := strings.Split(strings.Map(cleaner, string(raw)), ",")

	gids := make([]uint, len(str))
	for i, s := range str {
		d, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad tile id %q: %w", s, err)
		}
		gids[i] = uint(d)
	}
	return gids, nil
}
