package detect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var detectCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "detect_compression",
	Subsystem: "format",
	Name:      "detected_total",
	Help:      "Stream opens by detected format and detection method.",
}, []string{"format", "method"})
