package server

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/tools"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// Metrics records tool calls in Prometheus collectors.
type Metrics struct {
	calls           *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
}

// NewMetrics registers the tool metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	calls, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fuelcalc_tool_calls_total",
		Help: "Total number of tool calls",
	}, []string{"tool", "outcome"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fuelcalc_tool_duration_seconds",
		Help:    "Time spent answering a tool call",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"}))
	if err != nil {
		return nil, err
	}
	recommendations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fuelcalc_recommendations_total",
		Help: "Recommended fuel per tool call",
	}, []string{"tool", "fuel"}))
	if err != nil {
		return nil, err
	}
	cacheHits, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fuelcalc_cache_hits_total",
		Help: "Tool calls answered from the result cache",
	}, []string{"tool"}))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		calls:           calls,
		duration:        duration,
		recommendations: recommendations,
		cacheHits:       cacheHits,
	}, nil
}

// register returns the collector already registered under the same
// descriptor, if any.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observe(tool string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	tool = toolLabel(tool)
	m.calls.WithLabelValues(tool, outcome(err)).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

func (m *Metrics) recommended(tool, fuel string) {
	if m == nil || fuel == "" {
		return
	}
	m.recommendations.WithLabelValues(tool, fuel).Inc()
}

func (m *Metrics) cacheHit(tool string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(tool).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, fuelcalc.ErrValidation):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

// toolLabel keeps label cardinality bounded for unknown names.
func toolLabel(name string) string {
	if _, ok := tools.Lookup(name); ok {
		return name
	}
	return "unknown"
}
