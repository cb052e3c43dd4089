package bridge

// Call invokes the named engine function with the given scalar arguments
// and returns the engine's double result.
//
// The name crosses the boundary as NUL-terminated UTF-8. An empty argument
// list is marshaled as a nil pointer with count 0 — never as an allocated
// empty buffer; the engine's calling convention distinguishes the two.
// Non-empty arguments go across as one contiguous double array in caller
// order.
//
// The result is not interpreted: NaN, infinities, and whatever sentinel
// values the engine encodes its own failures as pass through untouched.
// Exactly one native call is made per invocation.
func (c *Context) Call(name string, args ...float64) (float64, error) {
	if c.closed {
		return 0, ErrContextClosed
	}

	cname := append([]byte(name), 0)

	var argp *float64
	if len(args) > 0 {
		argp = &args[0]
	}

	return c.lib.Call(c.handle, &cname[0], argp, int32(len(args))), nil
}
