// Package metrics exposes Prometheus counters for estimates and exports.
package metrics

import (
	"errors"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartconstruction/estimate"
)

// Outcome labels for room estimates.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidMaterial = "invalid_material"
	OutcomeNonFiniteInput  = "non_finite_input"
	OutcomeOutOfRange      = "out_of_range"
	OutcomeError           = "error"
)

// OutcomeFor maps an estimator error to its outcome label.
func OutcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, estimate.ErrInvalidMaterialSelection):
		return OutcomeInvalidMaterial
	case errors.Is(err, estimate.ErrNonFiniteInput):
		return OutcomeNonFiniteInput
	case errors.Is(err, estimate.ErrQuantityOutOfRange):
		return OutcomeOutOfRange
	default:
		return OutcomeError
	}
}

type Metrics struct {
	roomEstimates *prometheus.CounterVec
	exports       *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the metrics registered on the default Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New creates the counters and registers them on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	roomEstimates := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sc_room_estimates_total",
			Help: "Room cost estimates computed, by outcome.",
		},
		[]string{"outcome"}, // ok | invalid_material | non_finite_input | error
	)
	exports := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sc_exports_total",
			Help: "Documents exported, by format.",
		},
		[]string{"format"}, // xlsx | pdf | invoice_pdf
	)

	registerer.MustRegister(roomEstimates, exports)

	return &Metrics{
		roomEstimates: roomEstimates,
		exports:       exports,
	}
}

// ObserveRoomEstimates adds n estimates with the given outcome.
func (m *Metrics) ObserveRoomEstimates(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.roomEstimates.WithLabelValues(outcome).Add(float64(n))
}

// ObserveExport counts one exported document.
func (m *Metrics) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
