// Package backend binds a framework's set of devices to one active
// index and dereferences as a device.Device, so the tensor core can
// target "whatever this backend currently points at" without knowing
// which framework it wrapped.
//
// Grounded on the facade shape of aistore's cluster.Target/cluster.Bck
// pairing (a stable handle the core calls into, backed by swappable
// state) and on aistore's widespread use of github.com/teris-io/shortid
// for short correlation ids stamped onto long-lived objects for logging.
package backend

import (
	"github.com/teris-io/shortid"

	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/cmn/nlog"
	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/memsys"
)

// Backend owns every device a single framework exposes and an index into
// it naming the "active" one. It satisfies device.Device itself by
// delegating every call to the active device, so a caller can pass a
// *Backend anywhere a device.Device is expected.
type Backend struct {
	id      string
	devices []device.Device
	active  int
}

// New wraps devices under one backend, with the first device active.
// Fails if devices is empty: a backend with nothing to dereference as
// isn't useful.
func New(devices ...device.Device) (*Backend, error) {
	if len(devices) == 0 {
		return nil, cmn.NewErrFramework("backend", errNoDevices)
	}
	id, err := shortid.Generate()
	if err != nil {
		return nil, err
	}
	return &Backend{id: id, devices: devices}, nil
}

// ID is a short correlation id for log lines, stable for the backend's
// lifetime.
func (b *Backend) ID() string { return b.id }

// Len is how many devices this backend knows about.
func (b *Backend) Len() int { return len(b.devices) }

// All returns a snapshot of every device this backend knows about.
func (b *Backend) All() []device.Device {
	out := make([]device.Device, len(b.devices))
	copy(out, b.devices)
	return out
}

// SetActive selects which of this backend's devices subsequent Device()
// calls dereference to.
func (b *Backend) SetActive(i int) error {
	if i < 0 || i >= len(b.devices) {
		return cmn.NewErrFramework("backend", errActiveIndexRange)
	}
	if nlog.V(4) {
		nlog.Infof("backend %s: active device -> %s", b.id, b.devices[i].String())
	}
	b.active = i
	return nil
}

// Device returns the currently active device.
func (b *Backend) Device() device.Device { return b.devices[b.active] }

// The methods below let *Backend stand in for a device.Device.

func (b *Backend) Kind() device.Kind { return b.Device().Kind() }
func (b *Backend) String() string    { return "backend:" + b.id[:6] + "/" + b.Device().String() }

func (b *Backend) Equal(o device.Device) bool {
	other, ok := o.(*Backend)
	if !ok {
		return b.Device().Equal(o)
	}
	return b.Device().Equal(other.Device())
}

func (b *Backend) Allocate(byteSize int) (memsys.Memory, error) {
	return b.Device().Allocate(byteSize)
}

func (b *Backend) TransferOut(srcMem memsys.Memory, dst device.Device, dstMem memsys.Memory) error {
	return b.Device().TransferOut(srcMem, dst, dstMem)
}

func (b *Backend) TransferIn(selfMem memsys.Memory, src device.Device, srcMem memsys.Memory) error {
	return b.Device().TransferIn(selfMem, src, srcMem)
}
