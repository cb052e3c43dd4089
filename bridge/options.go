package bridge

import "github.com/xdl-lang/xdl/native"

// Option configures context construction.
type Option func(*config)

type config struct {
	path string
	lib  *native.Library
}

func defaultConfig() config {
	return config{}
}

// WithPath sets an explicit artifact path, bypassing the platform search.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithLibrary builds the context on an already-bound library instead of
// loading one. The caller keeps ownership: Close on the context releases
// only the engine handle, never the library.
func WithLibrary(lib *native.Library) Option {
	return func(c *config) {
		c.lib = lib
	}
}
