package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewCounter registers the service counter vec on reg. Every counted
// outcome (logins, uploads, quota rejections, requests) is one "result"
// label value.
func NewCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fileregistry",
			Name:      "events_total",
			Help:      "Outcomes of account and file registry operations.",
		},
		[]string{"result"})
}
