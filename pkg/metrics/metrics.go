package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados do ad-serve
const (
	ServeResultServed = "served"
	ServeResultEmpty  = "empty"
	ServeResultError  = "error"
)

// Resultados do pedido de reset de senha
const (
	ResetOutcomeSent     = "sent"
	ResetOutcomeNoMailer = "no_mailer"
	ResetOutcomeFailed   = "failed"
	ResetOutcomeInvalid  = "invalid"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mko_http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mko_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method"},
	)

	adServeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mko_ad_serve_total",
			Help: "Total de chamadas ao ad-serve por resultado",
		},
		[]string{"result"},
	)

	adEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mko_ad_events_total",
			Help: "Total de eventos de anúncio registrados por tipo",
		},
		[]string{"type"},
	)

	passwordResetRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mko_password_reset_requests_total",
			Help: "Total de pedidos de reset de senha por resultado",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func RecordAdServe(result string) {
	adServeTotal.WithLabelValues(result).Inc()
}

func RecordAdEvent(eventType string) {
	adEventsTotal.WithLabelValues(eventType).Inc()
}

func RecordPasswordReset(outcome string) {
	passwordResetRequestsTotal.WithLabelValues(outcome).Inc()
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
