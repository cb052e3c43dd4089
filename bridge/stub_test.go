package bridge

import (
	"math"
	"unsafe"

	"github.com/xdl-lang/xdl/native"
)

// stubEngine is an in-process stand-in for the native engine. It counts
// entry-point invocations and records exactly what crossed the boundary so
// tests can assert on the marshaled form, not just the result.
type stubEngine struct {
	nextHandle native.Handle

	initCalls    int
	cleanupCalls int
	callCalls    int

	lastCleanup native.Handle
	lastCall    native.Handle
	lastName    string
	lastArgs    *float64
	lastNargs   int32
}

func newStubEngine() *stubEngine {
	return &stubEngine{nextHandle: 1}
}

func (s *stubEngine) library() *native.Library {
	return native.Bind(s.init, s.cleanup, s.call)
}

func (s *stubEngine) init() native.Handle {
	s.initCalls++
	h := s.nextHandle
	if h != 0 {
		s.nextHandle++
	}
	return h
}

func (s *stubEngine) cleanup(h native.Handle) {
	s.cleanupCalls++
	s.lastCleanup = h
}

func (s *stubEngine) call(h native.Handle, name *byte, args *float64, nargs int32) float64 {
	s.callCalls++
	s.lastCall = h
	s.lastName = cString(name)
	s.lastArgs = args
	s.lastNargs = nargs

	vals := doubles(args, nargs)
	switch s.lastName {
	case "sin":
		return math.Sin(vals[0])
	case "cos":
		return math.Cos(vals[0])
	case "sqrt":
		return math.Sqrt(vals[0])
	case "sum":
		var total float64
		for _, v := range vals {
			total += v
		}
		return total
	case "identity":
		if len(vals) == 0 {
			return 0
		}
		return vals[0]
	}
	return math.NaN()
}

// cString reads a NUL-terminated byte string the way the engine would see
// the name argument.
func cString(p *byte) string {
	if p == nil {
		return ""
	}
	var out []byte
	for ptr := unsafe.Pointer(p); ; ptr = unsafe.Add(ptr, 1) {
		b := *(*byte)(ptr)
		if b == 0 {
			return string(out)
		}
		out = append(out, b)
	}
}

func doubles(p *float64, n int32) []float64 {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p, int(n))
}
