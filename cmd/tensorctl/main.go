// Command tensorctl is a small demonstration driver for the tensor
// module: it allocates a tensor on the host, reads it on a simulated
// OpenCL device (forcing a synchronization), and reports what it sees.
// It takes no external collaborators and no flags beyond -v.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/multidev/tensor/backend"
	"github.com/multidev/tensor/cmn/nlog"
	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/registry"
	"github.com/multidev/tensor/sharedtensor"
	"github.com/multidev/tensor/tensor"
)

func main() {
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()
	nlog.SetVerbosity(*verbosity)

	if err := run(); err != nil {
		nlog.Errorln(err)
		os.Exit(1)
	}
}

func run() error {
	host, err := backend.New(device.Host{})
	if err != nil {
		return err
	}
	accel, err := backend.New(device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0})
	if err != nil {
		return err
	}

	reg, err := registry.New()
	if err != nil {
		return err
	}
	defer reg.Close()

	recs, err := backend.Enumerate(context.Background(), reg, host, accel)
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Printf("discovered device: kind=%s id=%s\n", r.Kind, r.ID)
	}

	shape := tensor.New(2, 2)
	st, err := sharedtensor.With[float32](host, shape, []float32{1, 2, 3, 4})
	if err != nil {
		return err
	}

	onAccel, err := st.Read(accel)
	if err != nil {
		return err
	}
	fmt.Printf("read on %s: %v\n", accel.Device().String(), onAccel)

	return nil
}
