package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RunsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_runs_total",
			Help: "Total number of completed pipeline runs.",
		},
	)
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracker_run_duration_seconds",
			Help:    "Duration of each pipeline run in seconds.",
			Buckets: []float64{1, 5, 15, 60, 300},
		},
	)
	NewPostingsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_new_postings",
			Help: "Number of new postings found by the last run.",
		},
	)
	NotificationErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_notification_errors_total",
			Help: "Total number of failed notification deliveries.",
		},
		[]string{"channel"},
	)
	TriggerOutcomesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_trigger_outcomes_total",
			Help: "Total number of run trigger requests by outcome.",
		},
		[]string{"outcome"},
	)
)

func StartMetricsServer(addr string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RunsCounter)
	prometheus.MustRegister(RunDuration)
	prometheus.MustRegister(NewPostingsGauge)
	prometheus.MustRegister(NotificationErrorsCounter)
	prometheus.MustRegister(TriggerOutcomesCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(addr, mux))
	}()
}
