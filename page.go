package idle

import (
	"sync"
)

// Page is a simple Document: a set of surfaces addressed by id plus a
// ready notification that fires exactly once.
type Page struct {
	elements map[string]Surface
	ready    []func()
	once     sync.Once
}

// NewPage returns an empty page
func NewPage() *Page {
	return &Page{elements: map[string]Surface{}}
}

// Add registers surface `s` under `id`, replacing anything already there
func (p *Page) Add(id string, s Surface) {
	p.elements[id] = s
}

// ElementByID returns the surface registered under `id`
func (p *Page) ElementByID(id string) (Surface, bool) {
	s, ok := p.elements[id]
	return s, ok
}

// OnReady registers a callback for Load
func (p *Page) OnReady(fn func()) {
	p.ready = append(p.ready, fn)
}

// Load marks the page as ready, calling registered callbacks in order.
// Only the first call does anything.
func (p *Page) Load() {
	p.once.Do(func() {
		for _, fn := range p.ready {
			fn()
		}
	})
}
