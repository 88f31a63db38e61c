package cmn

import (
	"errors"
	"testing"
)

func TestErrorKindsWrapAndUnwrap(t *testing.T) {
	cause := errors.New("driver said no")
	err := NewErrMemoryAllocationFailed("opencl", cause)

	var target *ErrMemoryAllocationFailed
	if !errors.As(err, &target) {
		t.Fatalf("expected errors.As to find *ErrMemoryAllocationFailed, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to satisfy errors.Is")
	}
}

func TestErrNoRouteMessage(t *testing.T) {
	err := NewErrNoRoute("cuda", "opencl")
	want := "no synchronization route found: cuda -> opencl"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrCapacityExceeded(t *testing.T) {
	err := NewErrCapacityExceeded(64)
	var target *ErrCapacityExceeded
	if !errors.As(err, &target) || target.Max != 64 {
		t.Fatalf("expected ErrCapacityExceeded{Max:64}, got %v", err)
	}
}
