package bridge

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xdl-lang/xdl/native"
)

func TestNewInitFailure(t *testing.T) {
	stub := newStubEngine()
	stub.nextHandle = 0 // engine refuses init

	_, err := New(WithLibrary(stub.library()))
	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
	if stub.initCalls != 1 {
		t.Errorf("init called %d times, want 1", stub.initCalls)
	}
	// No handle came back, so nothing must be cleaned up.
	if stub.cleanupCalls != 0 {
		t.Errorf("cleanup called %d times on failed init, want 0", stub.cleanupCalls)
	}
}

func TestCloseInvokesCleanupExactlyOnce(t *testing.T) {
	stub := newStubEngine()

	ctx, err := New(WithLibrary(stub.library()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := ctx.Close(); err != nil {
			t.Fatalf("Close #%d: %v", i+1, err)
		}
	}

	if stub.cleanupCalls != 1 {
		t.Errorf("cleanup called %d times, want exactly 1", stub.cleanupCalls)
	}
	if stub.lastCleanup != 1 {
		t.Errorf("cleanup received handle %d, want the handle init issued (1)", stub.lastCleanup)
	}
}

func TestCallAfterCloseNeverReachesEngine(t *testing.T) {
	stub := newStubEngine()

	ctx, err := New(WithLibrary(stub.library()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err = ctx.Call("sin", 1.0)
	if !errors.Is(err, ErrContextClosed) {
		t.Fatalf("expected ErrContextClosed, got %v", err)
	}
	if stub.callCalls != 0 {
		t.Errorf("call entry invoked %d times after Close, want 0", stub.callCalls)
	}
}

func TestSharedLibraryIndependentHandles(t *testing.T) {
	stub := newStubEngine()
	lib := stub.library()

	a, err := New(WithLibrary(lib))
	if err != nil {
		t.Fatalf("New a: %v", err)
	}
	b, err := New(WithLibrary(lib))
	if err != nil {
		t.Fatalf("New b: %v", err)
	}

	if err := a.Close(); err != nil {
		t.Fatalf("Close a: %v", err)
	}
	if stub.lastCleanup != 1 {
		t.Errorf("cleanup received handle %d, want a's handle (1)", stub.lastCleanup)
	}

	// b's handle survives a's teardown.
	if _, err := b.Call("identity", 5); err != nil {
		t.Fatalf("Call on b after closing a: %v", err)
	}
	if stub.lastCall != 2 {
		t.Errorf("call used handle %d, want b's handle (2)", stub.lastCall)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close b: %v", err)
	}
	if stub.cleanupCalls != 2 {
		t.Errorf("cleanup called %d times, want 2", stub.cleanupCalls)
	}
}

func TestNewLibraryNotFound(t *testing.T) {
	t.Setenv("XDL_LIBRARY", "")
	t.Chdir(t.TempDir())

	_, err := New()
	var nfe *native.LibraryNotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected LibraryNotFoundError, got %v", err)
	}
}

func TestNewExplicitPathLoadFailure(t *testing.T) {
	_, err := New(WithPath(filepath.Join(t.TempDir(), "libxdl_ffi.so")))
	if err == nil {
		t.Fatal("expected load failure for missing artifact")
	}
	if errors.Is(err, ErrInitFailed) {
		t.Fatalf("load failure mislabeled as init failure: %v", err)
	}
}
