package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Handle identifies one live execution context inside the engine. It is
// meaningful only to the engine; zero is the failure sentinel returned by a
// refused init.
type Handle uintptr

// Entry point signatures of the engine's C ABI.
type (
	// InitFunc creates an engine context. Zero means the engine refused.
	InitFunc func() Handle

	// CleanupFunc destroys an engine context. The engine's tolerance of a
	// second invocation on the same handle is unspecified; callers must
	// invoke it at most once per handle.
	CleanupFunc func(ctx Handle)

	// CallFunc invokes the named engine function. name is NUL-terminated
	// UTF-8; args may be nil when nargs is 0.
	CallFunc func(ctx Handle, name *byte, args *float64, nargs int32) float64
)

// The three symbols every engine artifact must export.
const (
	symInit    = "xdl_init"
	symCleanup = "xdl_cleanup"
	symCall    = "xdl_call_function"
)

// Library is a loaded engine artifact with its entry points resolved and
// typed. It is immutable once opened apart from Close, and holds no
// per-call state, so it may back any number of contexts.
type Library struct {
	handle uintptr

	init    InitFunc
	cleanup CleanupFunc
	call    CallFunc

	closed bool
}

// Open loads the artifact at path and binds the three required entry
// points. A missing symbol releases the artifact and fails: an engine build
// without the full table does not implement the expected contract, and
// nothing at runtime can recover that.
func Open(path string) (*Library, error) {
	h, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	lib := &Library{handle: h}

	initAddr, err := resolveSymbol(h, symInit)
	if err != nil {
		closeLibrary(h)
		return nil, fmt.Errorf("bind %s: %w", symInit, err)
	}
	cleanupAddr, err := resolveSymbol(h, symCleanup)
	if err != nil {
		closeLibrary(h)
		return nil, fmt.Errorf("bind %s: %w", symCleanup, err)
	}
	callAddr, err := resolveSymbol(h, symCall)
	if err != nil {
		closeLibrary(h)
		return nil, fmt.Errorf("bind %s: %w", symCall, err)
	}

	purego.RegisterFunc(&lib.init, initAddr)
	purego.RegisterFunc(&lib.cleanup, cleanupAddr)
	purego.RegisterFunc(&lib.call, callAddr)

	return lib, nil
}

// Bind constructs a Library from already-resolved entry points. It exists
// for engine stubs in tests and for embedders that obtain the symbols some
// other way. The returned Library owns no artifact handle, so Close
// releases nothing.
func Bind(init InitFunc, cleanup CleanupFunc, call CallFunc) *Library {
	return &Library{init: init, cleanup: cleanup, call: call}
}

// Init invokes the engine's init entry.
func (l *Library) Init() Handle {
	return l.init()
}

// Cleanup invokes the engine's cleanup entry with h.
func (l *Library) Cleanup(h Handle) {
	l.cleanup(h)
}

// Call invokes the engine's call entry. Marshaling the name and argument
// buffer is the caller's job; the values are passed through untouched.
func (l *Library) Call(h Handle, name *byte, args *float64, nargs int32) float64 {
	return l.call(h, name, args, nargs)
}

// Close releases the artifact handle. It is a no-op on a Library built with
// Bind, and on every call after the first.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	if l.handle == 0 {
		return nil
	}
	return closeLibrary(l.handle)
}
