// Package native loads the XDL engine's shared library and binds its entry
// points.
//
// The engine is an opaque compiled artifact exposing a fixed C ABI:
//
//	void*  xdl_init(void);
//	void   xdl_cleanup(void* ctx);
//	double xdl_call_function(void* ctx, const char* name, double* args, int nargs);
//
// [Locate] finds the artifact on disk, [Open] loads it and resolves the
// three symbols into a typed [Library], and [Bind] lets callers — tests in
// particular — supply the entry points directly. Raw symbol lookup is never
// exposed beyond Open.
//
// A Library holds no mutable call state and may be shared read-only by any
// number of contexts; each context remains responsible for its own engine
// handle.
package native
