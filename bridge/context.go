package bridge

import (
	"errors"

	"github.com/xdl-lang/xdl/native"
)

var (
	// ErrInitFailed reports that the engine's init entry returned its null
	// sentinel. Not retryable.
	ErrInitFailed = errors.New("engine init failed")

	// ErrContextClosed reports a call through a closed context. The native
	// layer is never reached in this case.
	ErrContextClosed = errors.New("context closed")
)

// Context owns exactly one live engine handle. Use it only through the
// pointer returned by New; copying a Context would create two owners for
// one handle and a double cleanup.
type Context struct {
	lib     *native.Library
	ownsLib bool
	handle  native.Handle
	closed  bool
}

// New constructs an engine context: locate the artifact (unless a bound
// library is supplied), load and bind it, and call the engine's init entry.
//
// Failures propagate typed: locator errors surface as
// [native.UnsupportedPlatformError] or [native.LibraryNotFoundError], a
// refused init as [ErrInitFailed]. On the init-failure path the freshly
// opened artifact is released before returning, so nothing leaks.
func New(opts ...Option) (*Context, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lib := cfg.lib
	ownsLib := false
	if lib == nil {
		path, err := native.Locate(cfg.path)
		if err != nil {
			return nil, err
		}
		lib, err = native.Open(path)
		if err != nil {
			return nil, err
		}
		ownsLib = true
	}

	handle := lib.Init()
	if handle == 0 {
		if ownsLib {
			lib.Close()
		}
		return nil, ErrInitFailed
	}

	return &Context{lib: lib, ownsLib: ownsLib, handle: handle}, nil
}

// Close releases the engine handle. The first call invokes the engine's
// cleanup entry exactly once and clears the handle; every later call is a
// no-op. The backing library is closed only if this Context opened it.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.lib.Cleanup(c.handle)
	c.handle = 0

	if c.ownsLib {
		return c.lib.Close()
	}
	return nil
}
