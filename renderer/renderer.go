package renderer

import "github.com/ByLCY/vellum/layout"

// Renderer turns a laid-out stream into final output bytes. The vellum
// pipeline annotates documents with style-tag strings, so renderers
// consume Stream[string]; back ends that care about tags may interpret
// them, the plain-text renderer skips them.
type Renderer interface {
	Render(stream layout.Stream[string]) ([]byte, error)
}
