// Package device models the framework-tagged compute devices a
// SharedTensor can hold a copy on. The set of variants is closed by
// design: open-ended trait objects would hide which variant a Device
// holds, and the closed set is what makes the downcast API safe.
//
// Real driver bindings for OpenCL/CUDA are an external dependency this
// repository does not implement; Host is a real implementation, OpenCL
// and CUDA are driverless simulations that honor the same equality rule
// and the same transfer matrix a real binding would, so the
// synchronization protocol in package sharedtensor can be exercised
// end-to-end without cgo.
package device

import "github.com/multidev/tensor/memsys"

// Kind names a concrete Device variant.
type Kind uint8

const (
	KindHost Kind = iota
	KindOpenCL
	KindCUDA
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindOpenCL:
		return "opencl"
	case KindCUDA:
		return "cuda"
	default:
		return "unknown"
	}
}

// Device is the contract every framework must provide. Implementations
// must also be safely comparable with Equal, and cheap to store by value
// in a copy table (shared ownership of any underlying context is
// acceptable).
type Device interface {
	Kind() Kind
	// String is a short, stable label used in logs and error messages.
	String() string
	// Equal reports whether two handles name the same physical device,
	// per the framework-specific rule.
	Equal(other Device) bool
	// Allocate returns a fresh Memory of exactly byteSize bytes, owned by
	// the caller.
	Allocate(byteSize int) (memsys.Memory, error)
	// TransferOut pushes srcMem's bytes from this device onto dst,
	// writing into dstMem. Returns ErrNoAvailableSynchronizationRouteFound
	// if this framework cannot push to dst.
	TransferOut(srcMem memsys.Memory, dst Device, dstMem memsys.Memory) error
	// TransferIn pulls src's bytes onto this device, writing into
	// selfMem. Returns ErrNoAvailableSynchronizationRouteFound if this
	// framework cannot pull from src.
	TransferIn(selfMem memsys.Memory, src Device, srcMem memsys.Memory) error
}
