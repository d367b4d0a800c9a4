package monitoring

import (
	"fmt"
	"net/http"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Service provides monitoring functionality on its own Prometheus registry
type Service struct {
	config    config.MonitoringConfig
	registry  *prometheus.Registry
	events    *prometheus.CounterVec
	recorded  *prometheus.CounterVec
	deletions prometheus.Counter
}

// NewService creates a new monitoring service and registers its counters
func NewService(cfg config.MonitoringConfig) (*Service, error) {
	reg := prometheus.NewRegistry()

	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "events_total",
			Help:      "Service events by name.",
		},
		[]string{"event"},
	)
	recorded := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "inspections_recorded_total",
			Help:      "Recorded inspections by observed varroa level.",
		},
		[]string{"varroa_mites"},
	)
	deletions := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "inspections_deleted_total",
			Help:      "Deleted inspections, single and bulk.",
		},
	)

	for name, c := range map[string]prometheus.Collector{
		"events":   events,
		"recorded": recorded,
		"deleted":  deletions,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("monitoring: register %s counter: %w", name, err)
		}
	}

	return &Service{
		config:    cfg,
		registry:  reg,
		events:    events,
		recorded:  recorded,
		deletions: deletions,
	}, nil
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.events.WithLabelValues(eventName).Inc()
	// events are routine; warn and error levels keep them out of the log
	if s.config.LogLevel == "debug" || s.config.LogLevel == "info" {
		nuts.L.Infof("[Monitoring] Event %s recorded with labels: %v", eventName, labels)
	}
}

// InspectionRecorded counts one stored inspection under its varroa level.
func (s *Service) InspectionRecorded(varroaMites string) {
	s.recorded.WithLabelValues(varroaMites).Inc()
}

// InspectionsDeleted adds n deleted inspections.
func (s *Service) InspectionsDeleted(n int64) {
	if n > 0 {
		s.deletions.Add(float64(n))
	}
}

// Registry exposes the registry, mainly for tests and embedding platforms
// that merge registries.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the Prometheus exposition format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
