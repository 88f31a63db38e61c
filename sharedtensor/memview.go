package sharedtensor

import "github.com/multidev/tensor/memsys"

// rawBytes extracts the backing bytes of mem regardless of its concrete
// variant. This package is the one place allowed to reach past the
// downcast API (memsys.AsHost/AsOpenCL/AsCUDA) for every variant at once,
// since SharedTensor is what hands typed views back out to callers; an
// extension package must still go through the fallible per-variant
// downcast.
func rawBytes(mem memsys.Memory) []byte {
	if h, ok := memsys.AsHost(mem); ok {
		return h.Bytes()
	}
	if o, ok := memsys.AsOpenCL(mem); ok {
		return o.Bytes()
	}
	if c, ok := memsys.AsCUDA(mem); ok {
		return c.Bytes()
	}
	return nil
}
