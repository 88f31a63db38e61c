package metrics

import (
	"errors"

	"github.com/multidev/tensor/cmn"
)

// errorKind maps err to a short label for the errors_total counter.
func errorKind(err error) string {
	switch {
	case errors.As(err, new(*cmn.ErrUninitializedMemory)):
		return "uninitialized"
	case errors.As(err, new(*cmn.ErrCapacityExceeded)):
		return "capacity_exceeded"
	case errors.As(err, new(*cmn.ErrAllocatedMemoryNotFoundForDevice)):
		return "not_found"
	case errors.As(err, new(*cmn.ErrInvalidReshapedTensorSize)):
		return "invalid_reshape"
	case errors.As(err, new(*cmn.ErrIncompatibleShape)):
		return "incompatible_shape"
	case errors.As(err, new(*cmn.ErrMemoryAllocationFailed)):
		return "alloc_failed"
	case errors.As(err, new(*cmn.ErrNoAvailableSynchronizationRouteFound)):
		return "no_route"
	case errors.As(err, new(*cmn.ErrFramework)):
		return "framework"
	default:
		return "other"
	}
}
