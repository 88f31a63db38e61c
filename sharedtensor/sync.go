package sharedtensor

import (
	"github.com/multidev/tensor/cmn"
	"github.com/multidev/tensor/cmn/cos"
	"github.com/multidev/tensor/cmn/debug"
	"github.com/multidev/tensor/cmn/nlog"
	"github.com/multidev/tensor/memsys"
	"github.com/multidev/tensor/metrics"
)

// sync brings copy-table entry i up to date by copying bytes from the
// latest current entry. Precondition: the bitmap is non-empty and bit i
// is not set; both are checked by the caller (Read/ReadWrite) before sync
// is invoked.
func (s *SharedTensor[T]) sync(i int) error {
	src := s.bitmap.Latest()
	debug.Assert(src != i, "sync target must differ from its source")

	srcDev, srcMem := s.table.At(src)
	dstDev, dstMem := s.table.At(i)

	if nlog.V(5) {
		nlog.Infof("sync: %s -> %s (%s)", srcDev, dstDev, cos.B2S(int64(dstMem.ByteSize())))
	}

	metrics.RecordSyncAttempt(srcDev.String(), dstDev.String())

	// Step 1: ask the source to push.
	err := srcDev.TransferOut(srcMem, dstDev, dstMem)
	if err == nil {
		s.verifyTransfer(srcMem, dstMem)
		return nil
	}
	if !cos.IsErrNoRoute(err) {
		metrics.RecordError("sync", err)
		return err
	}

	// Step 2: push refused; ask the destination to pull.
	err = dstDev.TransferIn(dstMem, srcDev, srcMem)
	if err == nil {
		s.verifyTransfer(srcMem, dstMem)
		return nil
	}
	if cos.IsErrNoRoute(err) {
		noRoute := cmn.NewErrNoRoute(srcDev.String(), dstDev.String())
		metrics.RecordError("sync", noRoute)
		return noRoute
	}
	metrics.RecordError("sync", err)
	return err
}

// verifyTransfer runs a cheap post-transfer checksum comparison when both
// debug assertions and cmn.Config.VerifyTransfers are enabled. A
// self-check the core can afford to skip in production builds.
func (s *SharedTensor[T]) verifyTransfer(src, dst memsys.Memory) {
	if !debug.Enabled() || !cmn.GCO.Get().VerifyTransfers {
		return
	}
	debug.Assert(memsys.VerifyEqual(src, dst), "post-transfer checksum mismatch")
}
