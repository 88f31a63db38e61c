// Package cmn holds the ambient stack shared by every package in this
// module: the error-kind surface, the process-wide configuration
// (cmn.GCO), and small helpers that don't deserve their own package.
// Grounded on aistore's cmn package, which plays the same role
// (cmn.NewErrXactUsePrev, cmn.GCO, cmn.Config) for that codebase.
package cmn

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUninitializedMemory is returned by Read/ReadWrite when a tensor's
// version bitmap is empty (no device holds valid bytes yet).
type ErrUninitializedMemory struct{ Op string }

func (e *ErrUninitializedMemory) Error() string {
	return fmt.Sprintf("%s: tensor is uninitialized", e.Op)
}

func NewErrUninitializedMemory(op string) error { return &ErrUninitializedMemory{Op: op} }

// ErrCapacityExceeded is returned when a copy table already holds the
// maximum number of entries (64, see sharedtensor.MaxCopies).
type ErrCapacityExceeded struct{ Max int }

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("copy table capacity exceeded (max %d device copies per tensor)", e.Max)
}

func NewErrCapacityExceeded(max int) error { return &ErrCapacityExceeded{Max: max} }

// ErrAllocatedMemoryNotFoundForDevice is returned by Dealloc when the
// named device has no entry in the copy table.
type ErrAllocatedMemoryNotFoundForDevice struct{ Device string }

func (e *ErrAllocatedMemoryNotFoundForDevice) Error() string {
	return fmt.Sprintf("no allocated memory found for device %q", e.Device)
}

func NewErrAllocatedMemoryNotFoundForDevice(device string) error {
	return &ErrAllocatedMemoryNotFoundForDevice{Device: device}
}

// ErrInvalidReshapedTensorSize is returned by Reshape when the new shape's
// capacity differs from the current one.
type ErrInvalidReshapedTensorSize struct {
	Have, Want int
}

func (e *ErrInvalidReshapedTensorSize) Error() string {
	return fmt.Sprintf("invalid reshape: capacity %d does not match current capacity %d", e.Want, e.Have)
}

func NewErrInvalidReshapedTensorSize(have, want int) error {
	return &ErrInvalidReshapedTensorSize{Have: have, Want: want}
}

// ErrIncompatibleShape is returned by SharedTensor.With when the supplied
// data length doesn't match shape.Capacity().
type ErrIncompatibleShape struct {
	DataLen, Capacity int
}

func (e *ErrIncompatibleShape) Error() string {
	return fmt.Sprintf("incompatible shape: data length %d, capacity %d", e.DataLen, e.Capacity)
}

func NewErrIncompatibleShape(dataLen, capacity int) error {
	return &ErrIncompatibleShape{DataLen: dataLen, Capacity: capacity}
}

// ErrMemoryAllocationFailed wraps a framework-reported allocation failure.
type ErrMemoryAllocationFailed struct {
	Framework string
	Cause     error
}

func (e *ErrMemoryAllocationFailed) Error() string {
	return fmt.Sprintf("%s: memory allocation failed: %v", e.Framework, e.Cause)
}

func (e *ErrMemoryAllocationFailed) Unwrap() error { return e.Cause }

func NewErrMemoryAllocationFailed(framework string, cause error) error {
	return &ErrMemoryAllocationFailed{Framework: framework, Cause: errors.Wrapf(cause, "%s alloc", framework)}
}

// ErrNoAvailableSynchronizationRouteFound is returned by Sync when both the
// push (transfer_out) and pull (transfer_in) directions refuse.
type ErrNoAvailableSynchronizationRouteFound struct {
	From, To string
}

func (e *ErrNoAvailableSynchronizationRouteFound) Error() string {
	return fmt.Sprintf("no synchronization route found: %s -> %s", e.From, e.To)
}

func NewErrNoRoute(from, to string) error {
	return &ErrNoAvailableSynchronizationRouteFound{From: from, To: to}
}

// ErrFramework wraps any other framework-reported error, tagged with the
// framework name so callers can tell which backend misbehaved.
type ErrFramework struct {
	Framework string
	Cause     error
}

func (e *ErrFramework) Error() string { return fmt.Sprintf("%s: %v", e.Framework, e.Cause) }
func (e *ErrFramework) Unwrap() error { return e.Cause }

func NewErrFramework(framework string, cause error) error {
	return &ErrFramework{Framework: framework, Cause: errors.WithStack(cause)}
}
