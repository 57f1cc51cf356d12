package idle

// Context2D is the subset of a 2D drawing context we paint with.
type Context2D interface {
	// SetFillStyle sets the colour (eg. "#ccc") used by following fills
	SetFillStyle(style string)

	// FillRect fills the rectangle with top left (x,y) of size w x h in pixels
	FillRect(x, y, w, h float64)
}

// Surface represents something we can draw on
type Surface interface {
	// Width in pixels
	Width() int

	// Height in pixels
	Height() int

	// Context returns the 2D drawing context for this surface
	Context() Context2D
}

// Document is the host environment the application starts in.
type Document interface {
	// ElementByID returns the surface registered under `id` (if any)
	ElementByID(id string) (Surface, bool)

	// OnReady registers `fn` to be called once the document is ready
	OnReady(fn func())
}
