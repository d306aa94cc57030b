package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObservePageDuration(time.Millisecond)
	r.IncPageOutcome(OutcomeSuccess)
	r.IncMemberFailure("methods", "method")
	r.ObserveRunDuration(time.Second)
	r.SetConcurrency(4)
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObservePageDuration(3 * time.Millisecond)
	pr.IncPageOutcome(OutcomeSuccess)
	pr.IncPageOutcome(OutcomeDegraded)
	pr.IncPageOutcome(OutcomeDegraded)
	pr.IncMemberFailure("methods", "method")
	pr.SetConcurrency(8)

	require.Equal(t, 1.0, testutil.ToFloat64(pr.pageOutcomes.WithLabelValues("success")))
	require.Equal(t, 2.0, testutil.ToFloat64(pr.pageOutcomes.WithLabelValues("degraded")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.memberFailures.WithLabelValues("methods", "method")))
	require.Equal(t, 8.0, testutil.ToFloat64(pr.concurrency))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncPageOutcome(OutcomeFailed)
	pr.ObservePageDuration(time.Second)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncPageOutcome(OutcomeSuccess)

	path := filepath.Join(t.TempDir(), "classpage.prom")
	require.NoError(t, pr.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(content), `classpage_page_outcomes_total{outcome="success"} 1`))
}
