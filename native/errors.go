package native

import "strings"

// UnsupportedPlatformError reports a GOOS with no known engine library
// naming convention. No candidate path is probed when this is returned.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return "unsupported platform: " + e.OS
}

// LibraryNotFoundError reports that no candidate path held the engine
// artifact. Tried preserves the probe order for diagnostics.
type LibraryNotFoundError struct {
	Tried []string
}

func (e *LibraryNotFoundError) Error() string {
	return "engine library not found (tried " + strings.Join(e.Tried, ", ") + ")"
}
