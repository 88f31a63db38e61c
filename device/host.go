package device

import (
	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/memsys"
)

// Host is the one real (non-simulated) Device in this module: host
// memory is just process address space, so all instances are equal —
// there is exactly one host.
type Host struct{}

func (Host) Kind() Kind        { return KindHost }
func (Host) String() string    { return "host" }
func (Host) Equal(o Device) bool {
	_, ok := o.(Host)
	return ok
}

// Allocate backs the buffer with a page-aligned anonymous mapping where
// the platform supports it (see host_linux.go), which is what real
// frameworks favor for host buffers they'll DMA into/out of. Falls back
// to a plain heap slice elsewhere (host_fallback.go).
func (Host) Allocate(byteSize int) (memsys.Memory, error) {
	buf, release, err := allocHostBytes(byteSize)
	if err != nil {
		return nil, cmn.NewErrMemoryAllocationFailed("host", err)
	}
	return memsys.NewHostMemory(buf, release), nil
}

func (h Host) TransferOut(srcMem memsys.Memory, dst Device, dstMem memsys.Memory) error {
	if dst.Kind() != KindHost {
		// The host side of the wire doesn't know how to push to an
		// accelerator; the accelerator must pull instead.
		return cmn.NewErrNoRoute(h.String(), dst.String())
	}
	src, ok := memsys.AsHost(srcMem)
	if !ok {
		return cmn.NewErrFramework("host", errNotHostMemory)
	}
	dstH, ok := memsys.AsHost(dstMem)
	if !ok {
		return cmn.NewErrFramework("host", errNotHostMemory)
	}
	copy(dstH.Bytes(), src.Bytes())
	return nil
}

func (h Host) TransferIn(selfMem memsys.Memory, src Device, srcMem memsys.Memory) error {
	if src.Kind() != KindHost {
		return cmn.NewErrNoRoute(src.String(), h.String())
	}
	self, ok := memsys.AsHost(selfMem)
	if !ok {
		return cmn.NewErrFramework("host", errNotHostMemory)
	}
	srcH, ok := memsys.AsHost(srcMem)
	if !ok {
		return cmn.NewErrFramework("host", errNotHostMemory)
	}
	copy(self.Bytes(), srcH.Bytes())
	return nil
}
