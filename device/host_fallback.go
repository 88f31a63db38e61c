//go:build !linux

package device

// allocHostBytes falls back to a plain GC-managed slice on platforms
// without the unix.Mmap path.
func allocHostBytes(byteSize int) (buf []byte, release func(), err error) {
	return make([]byte, byteSize), func() {}, nil
}
