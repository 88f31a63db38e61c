// Package cos ("common os"/"common small stuff") holds the little
// predicates and formatting helpers that don't belong on the error types
// themselves, grounded on aistore's cmn/cos (cos.IsErrOOS, cos.IsEOF).
package cos

import (
	"errors"

	"github.com/multidev/tensor/cmn"
)

// IsErrCapacityExceeded reports whether err (or something it wraps) is an
// ErrCapacityExceeded.
func IsErrCapacityExceeded(err error) bool {
	var e *cmn.ErrCapacityExceeded
	return errors.As(err, &e)
}

// IsErrNoRoute reports whether err is ErrNoAvailableSynchronizationRouteFound.
func IsErrNoRoute(err error) bool {
	var e *cmn.ErrNoAvailableSynchronizationRouteFound
	return errors.As(err, &e)
}

// IsErrUninitialized reports whether err is ErrUninitializedMemory.
func IsErrUninitialized(err error) bool {
	var e *cmn.ErrUninitializedMemory
	return errors.As(err, &e)
}

// IsErrIncompatibleShape reports whether err is ErrIncompatibleShape.
func IsErrIncompatibleShape(err error) bool {
	var e *cmn.ErrIncompatibleShape
	return errors.As(err, &e)
}

// IsErrAllocatedMemoryNotFoundForDevice reports whether err is
// ErrAllocatedMemoryNotFoundForDevice.
func IsErrAllocatedMemoryNotFoundForDevice(err error) bool {
	var e *cmn.ErrAllocatedMemoryNotFoundForDevice
	return errors.As(err, &e)
}

// B2S formats a byte count the way log lines in this module want it
// (binary/IEC units), grounded on aistore's cos.ToSizeIEC.
func B2S(b int64) string {
	const unit = 1024
	if b < unit {
		return itoa(b) + "B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return ftoa(float64(b)/float64(div)) + string("KMGTPE"[exp]) + "iB"
}

func itoa(n int64) string {
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

func ftoa(f float64) string {
	whole := int64(f)
	frac := int64((f - float64(whole)) * 10)
	if frac < 0 {
		frac = -frac
	}
	return itoa(whole) + "." + itoa(frac)
}
