package device

import (
	"github.com/google/uuid"

	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/memsys"
)

// CUDAContext stands in for a CUDA context/primary-context handle;
// transfers are context-scoped — two CUDA devices can move bytes between
// each other only within the same context.
type CUDAContext struct {
	ID string
}

func NewCUDAContext() *CUDAContext {
	return &CUDAContext{ID: uuid.NewString()}
}

// CUDA is a simulated CUDA device; see the package doc for why this
// repository doesn't bind the real driver.
type CUDA struct {
	Context  *CUDAContext
	DeviceID int
}

func (d CUDA) Kind() Kind     { return KindCUDA }
func (d CUDA) String() string { return "cuda:" + d.Context.ID[:8] + "/" + itoa(d.DeviceID) }

func (d CUDA) Equal(o Device) bool {
	other, ok := o.(CUDA)
	if !ok {
		return false
	}
	return d.Context.ID == other.Context.ID && d.DeviceID == other.DeviceID
}

func (d CUDA) Allocate(byteSize int) (memsys.Memory, error) {
	return memsys.NewCUDAMemory(make([]byte, byteSize), d.Context.ID), nil
}

func (d CUDA) TransferOut(srcMem memsys.Memory, dst Device, dstMem memsys.Memory) error {
	src, ok := memsys.AsCUDA(srcMem)
	if !ok {
		return cmn.NewErrFramework("cuda", errNotCUDAMemory)
	}
	switch dst.Kind() {
	case KindHost:
		h, ok := memsys.AsHost(dstMem)
		if !ok {
			return cmn.NewErrFramework("cuda", errNotHostMemory)
		}
		copy(h.Bytes(), src.Bytes())
		return nil
	case KindCUDA:
		other := dst.(CUDA)
		if other.Context.ID != d.Context.ID {
			return cmn.NewErrNoRoute(d.String(), dst.String())
		}
		o, ok := memsys.AsCUDA(dstMem)
		if !ok {
			return cmn.NewErrFramework("cuda", errNotCUDAMemory)
		}
		copy(o.Bytes(), src.Bytes())
		return nil
	default:
		// "CUDA -> OpenCL: no direct route"
		return cmn.NewErrNoRoute(d.String(), dst.String())
	}
}

func (d CUDA) TransferIn(selfMem memsys.Memory, src Device, srcMem memsys.Memory) error {
	self, ok := memsys.AsCUDA(selfMem)
	if !ok {
		return cmn.NewErrFramework("cuda", errNotCUDAMemory)
	}
	switch src.Kind() {
	case KindHost:
		h, ok := memsys.AsHost(srcMem)
		if !ok {
			return cmn.NewErrFramework("cuda", errNotHostMemory)
		}
		copy(self.Bytes(), h.Bytes())
		return nil
	case KindCUDA:
		other := src.(CUDA)
		if other.Context.ID != d.Context.ID {
			return cmn.NewErrNoRoute(src.String(), d.String())
		}
		o, ok := memsys.AsCUDA(srcMem)
		if !ok {
			return cmn.NewErrFramework("cuda", errNotCUDAMemory)
		}
		copy(self.Bytes(), o.Bytes())
		return nil
	default:
		return cmn.NewErrNoRoute(src.String(), d.String())
	}
}
