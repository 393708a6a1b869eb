package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survivor_http_requests_total",
			Help: "Total number of HTTP requests by route/method/code.",
		},
		[]string{"route", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survivor_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survivor_pick_submissions_total",
			Help: "Pick submission attempts by result.",
		},
		[]string{"result"},
	)

	submissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survivor_pick_submission_duration_seconds",
			Help:    "Duration of pick submissions by result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survivor_cache_lookups_total",
			Help: "Reference data cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)

	ambiguousGames = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "survivor_ambiguous_game_resolutions_total",
			Help: "Submissions where the picked team resolved to more than one game in the week.",
		},
	)
)

func ObserveSubmission(result string, start time.Time) {
	if strings.TrimSpace(result) == "" {
		result = "unknown"
	}
	submissions.WithLabelValues(result).Inc()
	submissionDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(result).Inc()
}

func IncAmbiguousGameResolution() {
	ambiguousGames.Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request counts and latency. Routes are taken from the
// matched ServeMux pattern so path parameters do not explode label cardinality.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		if strings.HasSuffix(route, "/metrics") || strings.HasPrefix(r.URL.Path, "/debug/pprof/") {
			return
		}

		code := strconv.Itoa(rec.status)
		httpRequests.WithLabelValues(route, r.Method, code).Inc()
		httpDuration.WithLabelValues(route, r.Method, code).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		submissions,
		submissionDuration,
		cacheLookups,
		ambiguousGames,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
