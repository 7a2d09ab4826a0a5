// Package metrics exposes Prometheus collectors for HTTP traffic and ticket
// activity.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

const namespace = "helpdesk"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	ticketsCreated   *prometheus.CounterVec
	transitions      *prometheus.CounterVec
	repliesCreated   prometheus.Counter
	rateLimitedTotal *prometheus.CounterVec
}

// New registers every collector on a private registry, plus the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ticketsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_created_total",
				Help:      "Tickets opened by priority",
			},
			[]string{"priority"},
		),
		transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticket_transitions_total",
				Help:      "Effective ticket status changes",
			},
			[]string{"from", "to"},
		),
		repliesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "replies_created_total",
				Help:      "Replies posted to ticket threads",
			},
		),
		rateLimitedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}
}

// ObserveRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RateLimited(route string) {
	m.rateLimitedTotal.WithLabelValues(route).Inc()
}

// Register counts ticket activity from published domain events.
func (m *Metrics) Register(d *events.Dispatcher) {
	d.Subscribe(ticket.EventTicketCreated, events.EventHandlerFunc(func(_ context.Context, e events.DomainEvent) error {
		if evt, ok := e.(ticket.TicketCreatedEvent); ok {
			m.ticketsCreated.WithLabelValues(evt.Priority.String()).Inc()
		}
		return nil
	}))
	d.Subscribe(ticket.EventStatusChanged, events.EventHandlerFunc(func(_ context.Context, e events.DomainEvent) error {
		if evt, ok := e.(ticket.StatusChangedEvent); ok {
			m.transitions.WithLabelValues(evt.From.String(), evt.To.String()).Inc()
		}
		return nil
	}))
	d.Subscribe(ticket.EventReplyCreated, events.EventHandlerFunc(func(context.Context, events.DomainEvent) error {
		m.repliesCreated.Inc()
		return nil
	}))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
