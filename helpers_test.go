package idle

// scriptedSource hands out the given values in order, wrapping around
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// fill is a single recorded FillRect call
type fill struct {
	Style      string
	X, Y, W, H float64
}

// recordingContext remembers every fill
type recordingContext struct {
	style string
	fills []fill
}

func (c *recordingContext) SetFillStyle(style string) {
	c.style = style
}

func (c *recordingContext) FillRect(x, y, w, h float64) {
	c.fills = append(c.fills, fill{Style: c.style, X: x, Y: y, W: w, H: h})
}

type recordingSurface struct {
	width  int
	height int
	ctx    *recordingContext
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height, ctx: &recordingContext{}}
}

func (s *recordingSurface) Width() int         { return s.width }
func (s *recordingSurface) Height() int        { return s.height }
func (s *recordingSurface) Context() Context2D { return s.ctx }

// checkerLevel returns the 2x2 level [[wall, floor], [floor, wall]]
func checkerLevel() (*Level, error) {
	return NewLevel(2, 2, WithRand(&scriptedSource{values: []float64{0.1, 0.9, 0.9, 0.1}}))
}
