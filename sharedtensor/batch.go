package sharedtensor

import (
	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/cmn/atomic"
	"github.com/multidev/tensor/cmn/nlog"
	"github.com/multidev/tensor/device"

	"golang.org/x/sync/errgroup"
)

// Warmer is any tensor that can pull a current copy onto a device without
// exposing its element type, so a batch of tensors of different T can be
// driven through one worker pool.
type Warmer interface {
	WarmTo(dev device.Device) error
}

// BatchWarm synchronizes every tensor in batch onto dev concurrently,
// bounded by parallelism workers (0 uses cmn.Config.BatchParallelism,
// which itself defaults to len(batch)). It returns how many tensors
// warmed successfully and the first error encountered, if any; one
// tensor's failure does not stop the others.
//
// Adapted from aistore's xact/xs bucket-copy worker pool (xact/xs/tcb.go,
// xact/xs/tcobjs.go): the same "N workers draining one job, refcounted
// completions" shape, narrowed from "copy every object in a bucket" to
// "pull every tensor in a batch onto one device."
func BatchWarm(dev device.Device, batch []Warmer, parallelism int) (succeeded int32, err error) {
	if parallelism <= 0 {
		parallelism = cmn.GCO.Get().BatchParallelism
	}
	if parallelism <= 0 {
		parallelism = len(batch)
	}
	if parallelism <= 0 {
		return 0, nil
	}

	var (
		g  errgroup.Group
		ok atomic.Int32
	)
	g.SetLimit(parallelism)

	for i, w := range batch {
		i, w := i, w
		g.Go(func() error {
			if werr := w.WarmTo(dev); werr != nil {
				nlog.Errorf("batch warm: item %d onto %s failed: %v", i, dev.String(), werr)
				return werr
			}
			ok.Inc()
			return nil
		})
	}

	err = g.Wait()
	return ok.Load(), err
}
