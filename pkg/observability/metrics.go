package observability

import (
	"github.com/aretw0/mosaic/pkg/grid"
	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rendered cells, rows and failed renders.
type Metrics struct {
	Cells  prometheus.Counter
	Rows   prometheus.Counter
	Errors prometheus.Counter
}

// NewMetrics creates the render counters and registers them on reg.
// A nil reg leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Cells: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mosaic_cells_rendered_total",
			Help: "Total number of cells emitted to a sink",
		}),
		Rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mosaic_rows_rendered_total",
			Help: "Total number of completed rows",
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mosaic_render_errors_total",
			Help: "Total number of renders aborted by a sink failure",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Cells, m.Rows, m.Errors)
	}
	return m
}

// Hooks returns render hooks feeding the counters.
func (m *Metrics) Hooks() screen.Hooks {
	return screen.Hooks{
		OnCell: func(grid.Point) { m.Cells.Inc() },
		OnRow:  func(int) { m.Rows.Inc() },
	}
}

// ObserveError counts err if it is non-nil.
func (m *Metrics) ObserveError(err error) {
	if err != nil {
		m.Errors.Inc()
	}
}
