package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func labelValues(t *testing.T, c prometheus.Collector, label string) []string {
	t.Helper()
	ch := make(chan prometheus.Metric, 16)
	c.Collect(ch)
	close(ch)
	var out []string
	for m := range ch {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			t.Fatal(err)
		}
		for _, lp := range pb.GetLabel() {
			if lp.GetName() == label {
				out = append(out, lp.GetValue())
			}
		}
	}
	return out
}

func TestInit_WarmsStepStatusLabels(t *testing.T) {
	Init()
	got := labelValues(t, workflowStepsCounter, "status")
	for _, want := range []string{"success", "error", "skipped", "unregistered"} {
		found := false
		for _, v := range got {
			if v == want {
				found = true
			}
		}
		if !found {
			t.Errorf("status %q not pre-registered; have [%s]", want, strings.Join(got, " "))
		}
	}
}

func TestInit_WarmsProviderOutcomeLabels(t *testing.T) {
	Init()
	got := labelValues(t, providerCallsCounter, "outcome")
	for _, want := range []string{"success", "error", "timeout"} {
		found := false
		for _, v := range got {
			if v == want {
				found = true
			}
		}
		if !found {
			t.Errorf("outcome %q not pre-registered; have [%s]", want, strings.Join(got, " "))
		}
	}
}
