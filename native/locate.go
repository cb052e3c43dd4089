package native

import (
	"os"
	"path/filepath"
	"runtime"
)

// libraryFileName maps an operating system to the engine artifact's file
// name under that platform's shared-library convention.
func libraryFileName(goos string) (string, error) {
	switch goos {
	case "darwin":
		return "libxdl_ffi.dylib", nil
	case "linux":
		return "libxdl_ffi.so", nil
	case "windows":
		return "xdl_ffi.dll", nil
	default:
		return "", &UnsupportedPlatformError{OS: goos}
	}
}

// Locate resolves a filesystem path to the engine artifact.
//
// An explicit path — the argument, or the XDL_LIBRARY environment variable —
// is returned unconditionally; whether it actually loads is decided by
// [Open]. Otherwise the platform's library name is probed at a fixed list of
// candidates: the debug build output, the release build output, the working
// directory, and the bare name. Debug deliberately shadows release so local
// development builds win.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv("XDL_LIBRARY"); env != "" {
		return env, nil
	}

	name, err := libraryFileName(runtime.GOOS)
	if err != nil {
		return "", err
	}

	candidates := []string{
		filepath.Join("target", "debug", name),
		filepath.Join("target", "release", name),
		"./" + name,
		name,
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	return "", &LibraryNotFoundError{Tried: candidates}
}
