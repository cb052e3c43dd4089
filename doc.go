// Package xdl provides Go bindings for the XDL scientific computing engine.
//
// # Overview
//
// The engine ships as a platform shared library (libxdl_ffi.so on Linux,
// libxdl_ffi.dylib on macOS, xdl_ffi.dll on Windows). The bridge locates and
// loads it, owns one execution handle per context, and dispatches scalar
// function calls by name.
//
// # One-shot calls
//
//	v, err := xdl.Sin(math.Pi / 2)
//
// Every convenience call constructs and tears down a full engine context, so
// it pays the load+bind+init+cleanup cost each time. For repeated calls hold
// one context explicitly:
//
//	ctx, err := bridge.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	v, err := ctx.Call("sin", math.Pi/2)
//
// # Finding the engine
//
// By default the library is probed at target/debug, target/release, the
// working directory, and finally the bare platform name. Pin it explicitly
// with [bridge.WithPath] or the XDL_LIBRARY environment variable.
//
// See the [native] and [bridge] packages for loading and lifecycle details,
// and cmd/xdl for the command-line surface.
package xdl
