package device

import "errors"

var (
	errNotHostMemory   = errors.New("memory is not host-resident")
	errNotOpenCLMemory = errors.New("memory is not opencl-resident")
	errNotCUDAMemory   = errors.New("memory is not cuda-resident")
)
