package sharedtensor_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/multidev/tensor/cmn/cos"
	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/sharedtensor"
	"github.com/multidev/tensor/tensor"
)

var _ = Describe("SharedTensor", func() {
	var host device.Host

	BeforeEach(func() {
		host = device.Host{}
	})

	Describe("host -> accelerator -> host round trip", func() {
		It("pulls bytes onto an OpenCL device, then back onto the host unchanged", func() {
			shape := tensor.New(2, 2)
			st, err := sharedtensor.With[float32](host, shape, []float32{1, 2, 3, 4})
			Expect(err).NotTo(HaveOccurred())

			cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			onCL, err := st.Read(cl)
			Expect(err).NotTo(HaveOccurred())
			Expect(onCL).To(Equal([]float32{1, 2, 3, 4}))

			backOnHost, err := st.Read(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(backOnHost).To(Equal([]float32{1, 2, 3, 4}))
		})
	})

	Describe("two accelerators in different contexts", func() {
		It("syncs each from the host rather than from one another", func() {
			shape := tensor.New(3)
			st, err := sharedtensor.With[int32](host, shape, []int32{7, 8, 9})
			Expect(err).NotTo(HaveOccurred())

			clA := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			clB := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}

			_, err = st.Read(clA)
			Expect(err).NotTo(HaveOccurred())

			// The host copy stays current (Read never invalidates it), so
			// Latest() still picks the host as the source for clB even
			// though clA and clB have no route between them.
			onB, err := st.Read(clB)
			Expect(err).NotTo(HaveOccurred())
			Expect(onB).To(Equal([]int32{7, 8, 9}))
		})
	})

	Describe("read-write invalidation", func() {
		It("collapses the version bitmap to the writer after ReadWrite", func() {
			shape := tensor.New(2)
			st, err := sharedtensor.With[uint8](host, shape, []uint8{1, 1})
			Expect(err).NotTo(HaveOccurred())

			cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			rw, err := st.ReadWrite(cl)
			Expect(err).NotTo(HaveOccurred())
			rw[0] = 99

			Expect(st.CurrentDeviceCount()).To(Equal(1))

			// Reading the host copy now must resynchronize from cl.
			onHost, err := st.Read(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(onHost).To(Equal([]uint8{99, 1}))
		})
	})

	Describe("write-only access", func() {
		It("skips synchronization entirely and hands back an uninitialized buffer", func() {
			shape := tensor.New(2)
			st := sharedtensor.New[uint8](shape)

			buf, err := st.Write(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(buf).To(HaveLen(2))

			copy(buf, []uint8{5, 6})
			got, err := st.Read(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]uint8{5, 6}))
		})
	})

	Describe("reshape", func() {
		It("preserves every existing copy when capacity is unchanged", func() {
			shape := tensor.New(2, 3)
			st, err := sharedtensor.With[float64](host, shape, []float64{1, 2, 3, 4, 5, 6})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Reshape(3, 2)).To(Succeed())
			Expect(st.Dimensions()).To(Equal([]int{3, 2}))

			got, err := st.Read(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]float64{1, 2, 3, 4, 5, 6}))
		})

		It("rejects a reshape that changes capacity", func() {
			shape := tensor.New(2, 3)
			st := sharedtensor.New[float64](shape)
			Expect(st.Reshape(4, 4)).To(HaveOccurred())
		})
	})

	Describe("dealloc", func() {
		It("drops a device's copy and resyncs it from the sole remaining copy on next Read", func() {
			shape := tensor.New(2, 2)
			st, err := sharedtensor.With[float32](host, shape, []float32{1, 2, 3, 4})
			Expect(err).NotTo(HaveOccurred())

			cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			_, err = st.Read(cl)
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Dealloc(host)).To(Succeed())
			Expect(st.Devices()).To(HaveLen(1))

			backOnHost, err := st.Read(host)
			Expect(err).NotTo(HaveOccurred())
			Expect(backOnHost).To(Equal([]float32{1, 2, 3, 4}))
		})

		It("fails with ErrAllocatedMemoryNotFoundForDevice for a device that never held a copy", func() {
			shape := tensor.New(1)
			st, err := sharedtensor.With[byte](host, shape, []byte{9})
			Expect(err).NotTo(HaveOccurred())

			cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			err = st.Dealloc(cl)
			Expect(err).To(HaveOccurred())
			Expect(cos.IsErrAllocatedMemoryNotFoundForDevice(err)).To(BeTrue())
		})
	})

	Describe("invalidate", func() {
		It("clears a device's bit without dropping its entry, forcing the next Read to resynchronize it", func() {
			shape := tensor.New(2)
			st, err := sharedtensor.With[uint8](host, shape, []uint8{1, 2})
			Expect(err).NotTo(HaveOccurred())

			cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}
			onCL, err := st.Read(cl)
			Expect(err).NotTo(HaveOccurred())
			Expect(onCL).To(Equal([]uint8{1, 2}))
			Expect(st.CurrentDeviceCount()).To(Equal(2))

			Expect(st.Invalidate(cl)).To(Succeed())
			Expect(st.CurrentDeviceCount()).To(Equal(1))
			Expect(st.Devices()).To(HaveLen(2))

			onCL, err = st.Read(cl)
			Expect(err).NotTo(HaveOccurred())
			Expect(onCL).To(Equal([]uint8{1, 2}))
			Expect(st.CurrentDeviceCount()).To(Equal(2))
		})
	})

	Describe("uninitialized access", func() {
		It("fails Read on a brand-new tensor with ErrUninitializedMemory", func() {
			shape := tensor.New(2, 2)
			st := sharedtensor.New[float32](shape)

			_, err := st.Read(host)
			Expect(err).To(HaveOccurred())
			Expect(cos.IsErrUninitialized(err)).To(BeTrue())
		})

		It("fails ReadWrite on a brand-new tensor with ErrUninitializedMemory", func() {
			shape := tensor.New(2, 2)
			st := sharedtensor.New[float32](shape)

			_, err := st.ReadWrite(host)
			Expect(err).To(HaveOccurred())
			Expect(cos.IsErrUninitialized(err)).To(BeTrue())
		})
	})

	Describe("incompatible shape", func() {
		It("rejects With when the data length doesn't match the shape's capacity", func() {
			shape := tensor.New(2, 2)
			_, err := sharedtensor.With[float32](host, shape, []float32{1, 2, 3})
			Expect(err).To(HaveOccurred())
			Expect(cos.IsErrIncompatibleShape(err)).To(BeTrue())
		})
	})

	Describe("copy-table capacity", func() {
		It("refuses a 65th distinct device copy", func() {
			shape := tensor.New(1)
			st, err := sharedtensor.With[byte](host, shape, []byte{1})
			Expect(err).NotTo(HaveOccurred())

			ctx := device.NewOpenCLContext()
			for id := 0; id < sharedtensor.MaxCopies-1; id++ {
				cl := device.OpenCL{Context: ctx, DeviceID: id}
				_, err := st.Read(cl)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(st.CurrentDeviceCount()).To(Equal(sharedtensor.MaxCopies))

			overflow := device.OpenCL{Context: ctx, DeviceID: sharedtensor.MaxCopies}
			_, err = st.Read(overflow)
			Expect(err).To(HaveOccurred())
		})
	})
})
