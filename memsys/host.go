package memsys

// HostMemory is a flat byte buffer resident in host (CPU) address space.
// Its bytes may be backed by an OS-level mapping (see device.Host, which
// allocates via unix.Mmap on Linux); release, when non-nil, must be called
// exactly once when the owning copy-table entry is dropped.
type HostMemory struct {
	buf     []byte
	release func()
}

// NewHostMemory wraps buf as host memory. release is called by Free and
// may be nil for memory that Go's garbage collector already owns (e.g. a
// plain make([]byte, n) on platforms without a pinned-memory path).
func NewHostMemory(buf []byte, release func()) *HostMemory {
	return &HostMemory{buf: buf, release: release}
}

func (h *HostMemory) Kind() Kind     { return KindHost }
func (h *HostMemory) ByteSize() int  { return len(h.buf) }
func (h *HostMemory) Bytes() []byte  { return h.buf }
func (*HostMemory) sealed()          {}

// Free releases the underlying OS mapping, if any. Idempotent: release
// runs at most once (SharedTensor.Dealloc and Realloc call Free when they
// drop a host copy).
func (h *HostMemory) Free() {
	if h.release != nil {
		h.release()
		h.release = nil
	}
}
