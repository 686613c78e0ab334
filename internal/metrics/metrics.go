package metrics

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/util"
)

// Service owns the prometheus collectors of the signing pipeline.
type Service struct {
	ordersByState *prometheus.GaugeVec
	submissions   *prometheus.CounterVec
	signerCalls   *prometheus.CounterVec
}

func New() *Service {
	s := &Service{
		ordersByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "signing_orders_by_state",
			Help: "Number of orders per lifecycle state.",
		}, []string{"state"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signing_submissions_total",
			Help: "Broadcast attempts by result.",
		}, []string{"result"}),
		signerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signing_signer_requests_total",
			Help: "Signer authority calls by operation and result.",
		}, []string{"operation", "result"}),
	}

	prometheus.MustRegister(s.ordersByState, s.submissions, s.signerCalls)

	return s
}

// ObserveOrderCounts refreshes the per-state order gauges. States with no
// rows are reset so terminal drains show up.
func (s *Service) ObserveOrderCounts(counts map[string]int64) {
	for _, state := range order.PendingStates {
		s.ordersByState.WithLabelValues(strings.ToLower(string(state))).Set(0)
	}
	for state, count := range counts {
		s.ordersByState.WithLabelValues(strings.ToLower(state)).Set(float64(count))
	}
}

// CountSubmission records one broadcast attempt. Safe on a nil service so
// callers without collectors skip recording.
func (s *Service) CountSubmission(accepted bool) {
	if s == nil {
		return
	}

	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	s.submissions.WithLabelValues(result).Inc()
}

// CountSignerCall records one signer authority round trip. Safe on a nil
// service so callers without collectors skip recording.
func (s *Service) CountSignerCall(operation string, err error) {
	if s == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	s.signerCalls.WithLabelValues(operation, result).Inc()
}

// Collect refreshes gauges from the store, for the metrics scrape hook.
func (s *Service) Collect(ctx context.Context, orders *order.Store) {
	counts, err := orders.CountsByState(ctx)
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to collect order state counts")
		return
	}

	s.ObserveOrderCounts(counts)
}
