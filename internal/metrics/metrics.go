package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	waysSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airlines_ways_searches_total",
		Help: "The total number of way searches by result kind",
	}, []string{"result"})
	waysSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "airlines_ways_search_duration_seconds",
		Help:    "Time spent answering a way search",
		Buckets: prometheus.DefBuckets,
	})
	flightsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airlines_flights_completed_total",
		Help: "The total number of flights marked completed by the worker",
	})
	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airlines_rate_limited_requests_total",
		Help: "The total number of requests rejected by the rate limiter",
	}, []string{"route"})
	notificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airlines_notifications_sent_total",
		Help: "The total number of order notifications handled by the worker",
	})
)

// ObserveSearch records one finished search; result is "empty", "direct", "transfer" or "error".
func ObserveSearch(result string, started time.Time) {
	waysSearches.WithLabelValues(result).Inc()
	waysSearchDuration.Observe(time.Since(started).Seconds())
}

func AddCompletedFlights(n int) {
	flightsCompleted.Add(float64(n))
}

func IncRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}

func IncNotificationsSent() {
	notificationsSent.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
