package canvas

import "github.com/gogpu/canvas/render"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default software raster backend
//	c := canvas.New(800, 600)
//
//	// Custom backend (dependency injection)
//	c := canvas.New(800, 600, canvas.WithBackend(myBackend))
type Option func(*config)

// config holds optional configuration for Canvas creation.
type config struct {
	width, height int
	backend       Backend
	target        render.RenderTarget
}

// WithBackend sets a custom rendering backend for the Canvas. The width and
// height arguments to New are ignored in favor of the backend's own size.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithTarget directs the default raster backend at an existing render
// target instead of allocating a fresh pixmap.
//
// Example:
//
//	t := render.NewPixmapTarget(800, 600)
//	c := canvas.New(800, 600, canvas.WithTarget(t))
func WithTarget(t render.RenderTarget) Option {
	return func(c *config) {
		c.target = t
	}
}
