package classifier

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intentd",
			Subsystem: "classifier",
			Name:      "loads_total",
			Help:      "Classifier load attempts by result",
		},
		[]string{"result"},
	)

	readyGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "intentd",
			Subsystem: "classifier",
			Name:      "ready",
			Help:      "1 when a pipeline is loaded, else 0",
		},
	)

	inferenceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "intentd",
			Subsystem: "classifier",
			Name:      "inference_duration_seconds",
			Help:      "Duration of zero-shot inference calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, readyGauge, inferenceDuration)
}
