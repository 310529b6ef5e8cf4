/*
Package observability exposes render activity as Prometheus metrics.

Metrics plugs into screen.Display through screen.Hooks, so the renderer itself stays
free of any metrics dependency:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	err := screen.Display(sink, proc, rng, point, value, screen.WithHooks(m.Hooks()))
	m.ObserveError(err)
*/
package observability
