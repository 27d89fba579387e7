// Package metric provides optional Prometheus instrumentation for the
// card pipeline: parse outcomes and durations, parse warnings,
// validation diagnostics by error code, and dispatched actions by type.
//
// The library never records metrics on its own; the host wraps the
// calls it cares about:
//
//	m := metric.NewMetrics()
//	m.Register(prometheus.DefaultRegisterer)
//
//	start := time.Now()
//	result, err := card.Parse(data)
//	m.RecordParse(result, err, time.Since(start))
package metric
