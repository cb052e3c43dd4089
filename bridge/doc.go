// Package bridge drives the XDL engine through an owned execution handle.
//
// # Overview
//
// A [Context] wraps one engine handle end to end: construction locates and
// loads the engine library, binds its entry points, and calls init; Close
// invokes cleanup exactly once. Call marshals a function name and scalar
// arguments into the engine's C calling convention and hands the double
// result back verbatim.
//
//	ctx, err := bridge.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	v, err := ctx.Call("sin", math.Pi/2)
//
// # Sharing a library
//
// A [native.Library] may back several contexts:
//
//	lib, _ := native.Open(path)
//	defer lib.Close()
//
//	a, _ := bridge.New(bridge.WithLibrary(lib))
//	b, _ := bridge.New(bridge.WithLibrary(lib))
//
// Each context still owns its own engine handle.
//
// # Blocking and concurrency
//
// Every native call blocks the calling goroutine until the engine returns;
// there is no cancellation, timeout, or retry at this layer. A Context does
// no internal locking — sharing one across goroutines requires external
// serialization of calls and Close.
package bridge
