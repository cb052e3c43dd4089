package xdl

import "github.com/xdl-lang/xdl/bridge"

// Call dispatches one engine function call through a throwaway context.
//
// Every invocation locates and loads the engine library, initializes a
// fresh context, performs exactly one call, and tears the context down
// again — the full load+bind+init+cleanup cost, every time. There is no
// context reuse on this path; callers making repeated calls should hold a
// [bridge.Context] and call it directly.
func Call(name string, args ...float64) (float64, error) {
	ctx, err := bridge.New()
	if err != nil {
		return 0, err
	}
	defer ctx.Close()

	return ctx.Call(name, args...)
}

// Sin computes the sine of x.
func Sin(x float64) (float64, error) { return Call("sin", x) }

// Cos computes the cosine of x.
func Cos(x float64) (float64, error) { return Call("cos", x) }

// Tan computes the tangent of x.
func Tan(x float64) (float64, error) { return Call("tan", x) }

// Sqrt computes the square root of x.
func Sqrt(x float64) (float64, error) { return Call("sqrt", x) }

// Exp computes e raised to x.
func Exp(x float64) (float64, error) { return Call("exp", x) }

// Log computes the natural logarithm of x.
func Log(x float64) (float64, error) { return Call("log", x) }
