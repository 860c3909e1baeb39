package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects the service's domain counters behind one scrape handler.
// All Inc helpers are nil-safe so wiring metrics stays optional in tests.
type Registry struct {
	reg *prometheus.Registry

	QuotesCreated        prometheus.Counter
	LineItemsPriced      prometheus.Counter
	AppraisalsCalculated prometheus.Counter
	TransitionsApplied   prometheus.Counter
	TransitionsRejected  prometheus.Counter
	QuoteIDCollisions    prometheus.Counter
	DepositsCollected    prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	quotesCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_quotes_created_total"})
	lineItemsPriced := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_line_items_priced_total"})
	appraisals := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_appraisals_calculated_total"})
	transitionsApplied := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_status_transitions_total"})
	transitionsRejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_status_transitions_rejected_total"})
	idCollisions := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_quote_id_collisions_total"})
	deposits := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoting_deposits_collected_total"})

	r.MustRegister(quotesCreated, lineItemsPriced, appraisals, transitionsApplied, transitionsRejected, idCollisions, deposits)
	return &Registry{
		reg:                  r,
		QuotesCreated:        quotesCreated,
		LineItemsPriced:      lineItemsPriced,
		AppraisalsCalculated: appraisals,
		TransitionsApplied:   transitionsApplied,
		TransitionsRejected:  transitionsRejected,
		QuoteIDCollisions:    idCollisions,
		DepositsCollected:    deposits,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) IncQuotesCreated() {
	if r != nil {
		r.QuotesCreated.Inc()
	}
}

func (r *Registry) IncLineItemsPriced() {
	if r != nil {
		r.LineItemsPriced.Inc()
	}
}

func (r *Registry) IncAppraisalsCalculated() {
	if r != nil {
		r.AppraisalsCalculated.Inc()
	}
}

func (r *Registry) IncTransitionsApplied() {
	if r != nil {
		r.TransitionsApplied.Inc()
	}
}

func (r *Registry) IncTransitionsRejected() {
	if r != nil {
		r.TransitionsRejected.Inc()
	}
}

func (r *Registry) IncQuoteIDCollisions() {
	if r != nil {
		r.QuoteIDCollisions.Inc()
	}
}

func (r *Registry) IncDepositsCollected() {
	if r != nil {
		r.DepositsCollected.Inc()
	}
}
