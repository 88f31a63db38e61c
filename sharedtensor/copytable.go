package sharedtensor

import (
	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/memsys"
)

// copyEntry pairs a device handle with the memory it owns. Each memory
// lives behind a stable address (the entry itself is stored by pointer in
// CopyTable.entries) so appending to the table never invalidates a borrow
// returned by an earlier Read/ReadWrite/Write.
type copyEntry struct {
	dev device.Device
	mem memsys.Memory
}

// CopyTable is the ordered, append-only list of copy entries backing one
// SharedTensor. New entries are only ever appended, so appending leaves
// existing indices unchanged; Remove shifts every later entry down by one
// index. No two entries ever have equal device handles; length never
// exceeds MaxCopies.
type CopyTable struct {
	entries []*copyEntry
}

// Len returns the current number of entries.
func (t *CopyTable) Len() int { return len(t.entries) }

// Find returns the index of dev's entry, or (-1,false) if none exists.
// Linear scan comparing device handles by the framework-defined equality.
func (t *CopyTable) Find(dev device.Device) (int, bool) {
	for i, e := range t.entries {
		if e.dev.Equal(dev) {
			return i, true
		}
	}
	return -1, false
}

// effectiveMaxCopies is MaxCopies, unless cmn.GCO.Get().MaxCopies overrides
// it with a smaller ceiling for a test that wants to exercise the
// capacity-exceeded path without allocating 64 real devices. The
// compiled-in constant is always the absolute ceiling; the override can
// only lower it, never raise it.
func effectiveMaxCopies() int {
	if n := cmn.GCO.Get().MaxCopies; n > 0 && n < MaxCopies {
		return n
	}
	return MaxCopies
}

// GetOrCreate returns dev's existing index, or allocates byteSize bytes on
// dev and appends a new entry. Fails with ErrCapacityExceeded once the
// table already holds effectiveMaxCopies entries, or with the device's own
// allocation error.
func (t *CopyTable) GetOrCreate(dev device.Device, byteSize int) (int, error) {
	if i, ok := t.Find(dev); ok {
		return i, nil
	}
	max := effectiveMaxCopies()
	if len(t.entries) >= max {
		return -1, cmn.NewErrCapacityExceeded(max)
	}
	mem, err := dev.Allocate(byteSize)
	if err != nil {
		return -1, err
	}
	t.entries = append(t.entries, &copyEntry{dev: dev, mem: mem})
	return len(t.entries) - 1, nil
}

// Remove detaches and returns the entry at i, shrinking the table.
// Callers are responsible for reindexing any bitmap that refers to
// indices above i (VersionBitmap.ReindexAfterRemoval).
func (t *CopyTable) Remove(i int) (dev device.Device, mem memsys.Memory) {
	e := t.entries[i]
	t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
	return e.dev, e.mem
}

// At returns the device and memory stored at index i.
func (t *CopyTable) At(i int) (device.Device, memsys.Memory) {
	e := t.entries[i]
	return e.dev, e.mem
}

// SplitBorrow returns the memory at i and j (i != j) for a transfer: the
// two entries never alias, since each entry's memory lives behind its own
// stable pointer.
func (t *CopyTable) SplitBorrow(i, j int) (memI, memJ memsys.Memory) {
	if i == j {
		panic("sharedtensor: SplitBorrow requires i != j")
	}
	return t.entries[i].mem, t.entries[j].mem
}

// Devices returns a snapshot of every device currently holding a copy, in
// table order.
func (t *CopyTable) Devices() []device.Device {
	out := make([]device.Device, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.dev
	}
	return out
}
