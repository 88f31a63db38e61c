package sharedtensor

import (
	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/memsys"
	"github.com/multidev/tensor/metrics"
	"github.com/multidev/tensor/tensor"
)

// SharedTensor owns a shape, a copy table, and a version bitmap for one
// logically-single tensor of element type T. It is the caller-facing type
// extension packages hold; they never touch the bitmap or copy table
// directly.
//
// Not safe for concurrent use without an external mutex: the core assumes
// one logical actor at a time. A caller that introduces parallelism is
// responsible for serializing access.
type SharedTensor[T any] struct {
	shape  tensor.Shape
	table  CopyTable
	bitmap VersionBitmap
}

// New creates an uninitialized tensor of the given shape: no device holds
// any bytes yet.
func New[T any](shape tensor.Shape) *SharedTensor[T] {
	return &SharedTensor[T]{shape: shape}
}

// With creates a tensor initialized on dev with data, which must have
// exactly shape.Capacity() elements.
func With[T any](dev device.Device, shape tensor.Shape, data []T) (*SharedTensor[T], error) {
	if len(data) != shape.Capacity() {
		return nil, cmn.NewErrIncompatibleShape(len(data), shape.Capacity())
	}
	st := New[T](shape)
	i, err := st.table.GetOrCreate(dev, st.byteSize())
	if err != nil {
		return nil, err
	}
	_, mem := st.table.At(i)
	copy(rawBytes(mem), elemsToBytes(data))
	st.bitmap.SetSingle(i)
	return st, nil
}

func (s *SharedTensor[T]) byteSize() int { return s.shape.ByteSize(elemSize[T]()) }

// Capacity is the tensor's element count.
func (s *SharedTensor[T]) Capacity() int { return s.shape.Capacity() }

// Rank is the tensor's number of dimensions.
func (s *SharedTensor[T]) Rank() int { return s.shape.Rank() }

// Dimensions returns the tensor's dimension sizes.
func (s *SharedTensor[T]) Dimensions() []int { return s.shape.Dimensions() }

// CurrentDeviceCount returns how many copy-table entries currently hold
// valid bytes (popcount of the version bitmap). Supplemental accessor,
// grounded on the counting assertions in the original source's
// tests/shared_memory_specs.rs.
func (s *SharedTensor[T]) CurrentDeviceCount() int {
	cnt := 0
	for i := 0; i < s.table.Len(); i++ {
		if s.bitmap.Contains(i) {
			cnt++
		}
	}
	return cnt
}

// Devices returns a snapshot of every device holding a copy-table entry,
// whether or not that copy is current.
func (s *SharedTensor[T]) Devices() []device.Device { return s.table.Devices() }

// WarmTo pulls a current copy onto dev without returning it, so a batch
// of differently-typed tensors can be synchronized through the single
// Warmer interface (see BatchWarm).
func (s *SharedTensor[T]) WarmTo(dev device.Device) error {
	_, err := s.Read(dev)
	return err
}

// Read returns an immutable view of dev's copy, synchronizing it first if
// necessary. Fails with ErrUninitializedMemory if the tensor has no valid
// bytes anywhere.
func (s *SharedTensor[T]) Read(dev device.Device) ([]T, error) {
	if s.bitmap.Empty() {
		return nil, cmn.NewErrUninitializedMemory("read")
	}
	i, err := s.table.GetOrCreate(dev, s.byteSize())
	if err != nil {
		metrics.RecordError("read", err)
		return nil, err
	}
	if !s.bitmap.Contains(i) {
		if err := s.sync(i); err != nil {
			metrics.RecordError("read", err)
			return nil, err
		}
	}
	s.bitmap.Insert(i)
	metrics.RecordAccess("read", dev.String())
	_, mem := s.table.At(i)
	return bytesToElems[T](rawBytes(mem)), nil
}

// ReadWrite returns a mutable view of dev's copy, synchronizing it first
// if necessary, then collapsing the version bitmap to {i} because the
// caller is expected to mutate what it gets back.
func (s *SharedTensor[T]) ReadWrite(dev device.Device) ([]T, error) {
	if s.bitmap.Empty() {
		return nil, cmn.NewErrUninitializedMemory("read_write")
	}
	i, err := s.table.GetOrCreate(dev, s.byteSize())
	if err != nil {
		metrics.RecordError("read_write", err)
		return nil, err
	}
	if !s.bitmap.Contains(i) {
		if err := s.sync(i); err != nil {
			metrics.RecordError("read_write", err)
			return nil, err
		}
	}
	s.bitmap.SetSingle(i)
	metrics.RecordAccess("read_write", dev.String())
	_, mem := s.table.At(i)
	return bytesToElems[T](rawBytes(mem)), nil
}

// Write returns a mutable view of dev's copy with no initialization check
// and no synchronization. Caller contract: every byte must be overwritten
// before the memory is observed via Read/ReadWrite; nothing in the core
// enforces this.
func (s *SharedTensor[T]) Write(dev device.Device) ([]T, error) {
	i, err := s.table.GetOrCreate(dev, s.byteSize())
	if err != nil {
		metrics.RecordError("write", err)
		return nil, err
	}
	s.bitmap.SetSingle(i)
	metrics.RecordAccess("write", dev.String())
	_, mem := s.table.At(i)
	return bytesToElems[T](rawBytes(mem)), nil
}

// Invalidate clears dev's bit without removing its copy-table entry,
// marking the copy stale so the next Read/ReadWrite resynchronizes it. An
// escape hatch for a Write caller that could not guarantee a full
// overwrite.
func (s *SharedTensor[T]) Invalidate(dev device.Device) error {
	i, ok := s.table.Find(dev)
	if !ok {
		return cmn.NewErrAllocatedMemoryNotFoundForDevice(dev.String())
	}
	s.bitmap &^= 1 << uint(i)
	return nil
}

// Dealloc drops dev's copy-table entry. No attempt is made to migrate its
// bytes elsewhere first: if the dropped entry was the only current copy,
// the tensor becomes uninitialized.
func (s *SharedTensor[T]) Dealloc(dev device.Device) error {
	i, ok := s.table.Find(dev)
	if !ok {
		return cmn.NewErrAllocatedMemoryNotFoundForDevice(dev.String())
	}
	_, mem := s.table.Remove(i)
	if hm, ok := memsys.AsHost(mem); ok {
		hm.Free()
	}
	s.bitmap.ReindexAfterRemoval(i)
	return nil
}

// Reshape replaces the shape with one of equal capacity, touching no
// copies. Fails with ErrInvalidReshapedTensorSize otherwise.
func (s *SharedTensor[T]) Reshape(dims ...int) error {
	next, err := s.shape.Reshaped(dims...)
	if err != nil {
		return err
	}
	s.shape = next
	return nil
}

// Realloc replaces the shape unconditionally, dropping every copy-table
// entry and clearing the bitmap: the tensor becomes equivalent to a
// fresh, uninitialized tensor of the new shape.
func (s *SharedTensor[T]) Realloc(dims ...int) {
	for i := 0; i < s.table.Len(); i++ {
		_, mem := s.table.At(i)
		if hm, ok := memsys.AsHost(mem); ok {
			hm.Free()
		}
	}
	s.shape = tensor.New(dims...)
	s.table = CopyTable{}
	s.bitmap.Clear()
}
