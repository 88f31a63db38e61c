package metrics

import (
	"testing"

	"github.com/multidev/tensor/cmn"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, labels prometheusLabels) float64 {
	t.Helper()
	mf, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, fam := range mf {
		if fam.GetName() != labels.family {
			continue
		}
		for _, m := range fam.GetMetric() {
			if matchesLabels(m, labels.pairs) {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}

type prometheusLabels struct {
	family string
	pairs  map[string]string
}

func matchesLabels(m *dto.Metric, want map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestRecordAccessIncrementsCounter(t *testing.T) {
	before := counterValue(t, prometheusLabels{family: "tensor_access_total", pairs: map[string]string{"mode": "read", "device": "unit-test-device"}})
	RecordAccess("read", "unit-test-device")
	after := counterValue(t, prometheusLabels{family: "tensor_access_total", pairs: map[string]string{"mode": "read", "device": "unit-test-device"}})
	if after != before+1 {
		t.Fatalf("expected counter to increment by 1, before=%v after=%v", before, after)
	}
}

func TestRecordErrorClassifiesKind(t *testing.T) {
	err := cmn.NewErrCapacityExceeded(64)
	before := counterValue(t, prometheusLabels{family: "tensor_errors_total", pairs: map[string]string{"op": "unit-test-op", "kind": "capacity_exceeded"}})
	RecordError("unit-test-op", err)
	after := counterValue(t, prometheusLabels{family: "tensor_errors_total", pairs: map[string]string{"op": "unit-test-op", "kind": "capacity_exceeded"}})
	if after != before+1 {
		t.Fatalf("expected counter to increment by 1, before=%v after=%v", before, after)
	}
}
