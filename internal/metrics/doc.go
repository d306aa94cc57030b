// Package metrics provides observability hooks for page generation.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	builder := page.NewBuilder(rc).WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The Prometheus implementation registers its collectors on a caller-provided
// registry; the CLI writes that registry to a node-exporter textfile after a run.
package metrics
