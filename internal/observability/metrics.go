package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts pipeline outcomes for operator dashboards.
type Metrics struct {
	uploads *prometheus.CounterVec
	fetches *prometheus.CounterVec
	handler http.Handler
}

func InitMetrics() (*Metrics, error) {
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vidvault_uploads_total",
		Help: "Asset uploads by asset class and outcome kind.",
	}, []string{"class", "outcome"})

	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vidvault_asset_fetches_total",
		Help: "Asset retrievals by outcome kind.",
	}, []string{"outcome"})

	var err error
	if uploads, err = register(uploads); err != nil {
		return nil, err
	}
	if fetches, err = register(fetches); err != nil {
		return nil, err
	}

	return &Metrics{
		uploads: uploads,
		fetches: fetches,
		handler: promhttp.Handler(),
	}, nil
}

func register(c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := prometheus.Register(c); err != nil {
		// Re-registration happens in tests; reuse the existing collector.
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}

		return nil, err
	}

	return c, nil
}

// ObserveUpload records one finished upload attempt. outcome is "ok" or the
// error kind.
func (m *Metrics) ObserveUpload(class, outcome string) {
	m.uploads.WithLabelValues(class, outcome).Inc()
}

func (m *Metrics) ObserveFetch(outcome string) {
	m.fetches.WithLabelValues(outcome).Inc()
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}
