package sharedtensor

import (
	"testing"

	"github.com/multidev/tensor/device"
	"github.com/multidev/tensor/tensor"
)

func TestBatchWarmSynchronizesEveryTensor(t *testing.T) {
	host := device.Host{}
	cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}

	batch := make([]Warmer, 4)
	for i := range batch {
		st, err := With[int32](host, tensor.New(2), []int32{int32(i), int32(i + 1)})
		if err != nil {
			t.Fatalf("With: %v", err)
		}
		batch[i] = st
	}

	ok, err := BatchWarm(cl, batch, 2)
	if err != nil {
		t.Fatalf("BatchWarm: %v", err)
	}
	if ok != int32(len(batch)) {
		t.Fatalf("expected %d warmed, got %d", len(batch), ok)
	}

	for i, w := range batch {
		st := w.(*SharedTensor[int32])
		got, err := st.Read(cl)
		if err != nil {
			t.Fatalf("Read after warm: %v", err)
		}
		if got[0] != int32(i) || got[1] != int32(i+1) {
			t.Fatalf("tensor %d not warmed correctly: %v", i, got)
		}
	}
}

func TestBatchWarmDefaultsParallelismToBatchSize(t *testing.T) {
	host := device.Host{}
	cl := device.OpenCL{Context: device.NewOpenCLContext(), DeviceID: 0}

	st, err := With[uint8](host, tensor.New(1), []uint8{42})
	if err != nil {
		t.Fatalf("With: %v", err)
	}

	ok, err := BatchWarm(cl, []Warmer{st}, 0)
	if err != nil {
		t.Fatalf("BatchWarm: %v", err)
	}
	if ok != 1 {
		t.Fatalf("expected 1 warmed, got %d", ok)
	}
}
