package device

import (
	"github.com/google/uuid"

	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/memsys"
)

// OpenCLContext stands in for a cl_context: a shared, refcounted handle.
// ID plays the role of the context pointer in the equality rule; two
// OpenCL handles are equal iff they share a Context.ID and a DeviceID.
type OpenCLContext struct {
	ID string
}

// NewOpenCLContext creates a fresh context, tagging it with a uuid the
// way a real binding would tag it with a driver-assigned pointer.
func NewOpenCLContext() *OpenCLContext {
	return &OpenCLContext{ID: uuid.NewString()}
}

// OpenCL is a simulated OpenCL device: same equality and transfer-matrix
// contract as the real driver wrapper this repository doesn't implement.
type OpenCL struct {
	Context  *OpenCLContext
	DeviceID int
}

func (d OpenCL) Kind() Kind     { return KindOpenCL }
func (d OpenCL) String() string { return "opencl:" + d.Context.ID[:8] + "/" + itoa(d.DeviceID) }

func (d OpenCL) Equal(o Device) bool {
	other, ok := o.(OpenCL)
	if !ok {
		return false
	}
	return d.Context.ID == other.Context.ID && d.DeviceID == other.DeviceID
}

func (d OpenCL) Allocate(byteSize int) (memsys.Memory, error) {
	return memsys.NewOpenCLMemory(make([]byte, byteSize), d.Context.ID, d.DeviceID), nil
}

func (d OpenCL) TransferOut(srcMem memsys.Memory, dst Device, dstMem memsys.Memory) error {
	src, ok := memsys.AsOpenCL(srcMem)
	if !ok {
		return cmn.NewErrFramework("opencl", errNotOpenCLMemory)
	}
	switch dst.Kind() {
	case KindHost:
		h, ok := memsys.AsHost(dstMem)
		if !ok {
			return cmn.NewErrFramework("opencl", errNotHostMemory)
		}
		copy(h.Bytes(), src.Bytes())
		return nil
	case KindOpenCL:
		other := dst.(OpenCL)
		if other.Context.ID != d.Context.ID {
			// "OpenCL (other context): indirect; optional" — left
			// unimplemented, so this cell always refuses.
			return cmn.NewErrNoRoute(d.String(), dst.String())
		}
		o, ok := memsys.AsOpenCL(dstMem)
		if !ok {
			return cmn.NewErrFramework("opencl", errNotOpenCLMemory)
		}
		copy(o.Bytes(), src.Bytes())
		return nil
	default:
		// "OpenCL -> CUDA: no direct route"
		return cmn.NewErrNoRoute(d.String(), dst.String())
	}
}

func (d OpenCL) TransferIn(selfMem memsys.Memory, src Device, srcMem memsys.Memory) error {
	self, ok := memsys.AsOpenCL(selfMem)
	if !ok {
		return cmn.NewErrFramework("opencl", errNotOpenCLMemory)
	}
	switch src.Kind() {
	case KindHost:
		h, ok := memsys.AsHost(srcMem)
		if !ok {
			return cmn.NewErrFramework("opencl", errNotHostMemory)
		}
		copy(self.Bytes(), h.Bytes())
		return nil
	case KindOpenCL:
		other := src.(OpenCL)
		if other.Context.ID != d.Context.ID {
			return cmn.NewErrNoRoute(src.String(), d.String())
		}
		o, ok := memsys.AsOpenCL(srcMem)
		if !ok {
			return cmn.NewErrFramework("opencl", errNotOpenCLMemory)
		}
		copy(self.Bytes(), o.Bytes())
		return nil
	default:
		return cmn.NewErrNoRoute(src.String(), d.String())
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
