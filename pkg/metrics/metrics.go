package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: "suntimes",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "upstream_latency",
			Subsystem: "suntimes",
			Help:      "Latency of sunrise-sunset API requests in seconds.",
			Buckets:   []float64{0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"date", "outcome"},
	)

	queries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "queries_total",
			Subsystem: "suntimes",
			Help:      "Location queries by outcome.",
		},
		[]string{"outcome"},
	)

	sessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "session_requests_total",
			Subsystem: "suntimes",
			Help:      "Requests by whether the session was seen before.",
		},
		[]string{"returning"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		upstreamLatency,
		queries,
		sessions,
	)
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveUpstream records one API request for the given relative date.
func ObserveUpstream(date string, ok bool, latency time.Duration) {
	upstreamLatency.With(prometheus.Labels{
		"date":    date,
		"outcome": outcome(ok),
	}).Observe(latency.Seconds())
}

// ObserveQuery counts one pipeline run.
func ObserveQuery(ok bool) {
	queries.With(prometheus.Labels{"outcome": outcome(ok)}).Inc()
}

func ObserveSession(returning bool) {
	sessions.With(prometheus.Labels{"returning": strconv.FormatBool(returning)}).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := routePath(r)
		rec := &statusRecorder{ResponseWriter: w}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, rec.code(), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

// routePath labels a request by its mux route template so that arbitrary
// paths under a prefix share one series. Outside a router it is the raw path.
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	if r.URL != nil {
		return r.URL.Path
	}
	return ""
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		// Unset, will be set to 200 by stdlib.
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) code() string {
	if s.status == 0 {
		return "200"
	}
	return strconv.Itoa(s.status)
}
