package observability

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homestay", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "homestay", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homestay", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|stale|error|set|del
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "homestay", Name: "view_sessions_active", Help: "Open view sessions."},
	)
	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homestay", Name: "view_session_events_total", Help: "Client events applied to view sessions."},
		[]string{"type", "result"}, // result: ok|rejected|limited
	)
	PublishedRooms = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homestay", Name: "catalog_publish_rooms_total", Help: "Rooms written to the catalog mirror."},
		[]string{"result"},
	)
)

// Serve starts a dedicated metrics listener on addr exposing reg.
// Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) error {
	if addr == "" {
		return nil // disabled
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	serveOn(ln, reg)
	return nil
}

func serveOn(ln net.Listener, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("metrics server listening")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, ActiveSessions, SessionEvents, PublishedRooms)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|stale|error|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func SessionOpened() { ActiveSessions.Inc() }
func SessionClosed() { ActiveSessions.Dec() }

func ObserveSessionEvent(typ, result string) {
	SessionEvents.WithLabelValues(typ, result).Inc()
}

func ObservePublish(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishedRooms.WithLabelValues(result).Inc()
}
