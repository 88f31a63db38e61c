//go:build linux

package device

import "golang.org/x/sys/unix"

// allocHostBytes maps byteSize anonymous, page-aligned bytes, standing in
// for the pinned/page-locked host buffers real OpenCL/CUDA frameworks
// prefer for DMA transfers. release unmaps it.
func allocHostBytes(byteSize int) (buf []byte, release func(), err error) {
	if byteSize == 0 {
		return []byte{}, func() {}, nil
	}
	buf, err = unix.Mmap(-1, 0, byteSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release = func() { _ = unix.Munmap(buf) }
	return buf, release, nil
}
