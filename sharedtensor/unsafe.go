package sharedtensor

import "unsafe"

// elemSize returns sizeof(T) for the tensor's element type. Computed from
// a zero value since T is fixed once the generic type is instantiated.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// elemsToBytes reinterprets a []T as a []byte sharing the same backing
// array — used only by With, where the caller's typed slice needs to land
// in a device's byte buffer.
func elemsToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*elemSize[T]())
}

// bytesToElems is the inverse of elemsToBytes, used by Read, ReadWrite and
// Write to hand a typed view back to the caller (Memory always holds
// untyped bytes; T-awareness lives only in SharedTensor).
func bytesToElems[T any](b []byte) []T {
	sz := elemSize[T]()
	if len(b) == 0 || sz == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/sz)
}
