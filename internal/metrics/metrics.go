// Package metrics exports Prometheus collectors for reservation operations and
// escrow transfers.
package metrics

import (
	"context"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace    = "reservel"
	unknownLabel = "unknown"
)

// Metrics records reservation operations and transfer attempts. It implements
// reservation.OperationLogger and escrow.TransferObserver.
type Metrics struct {
	operations       *prometheus.CounterVec
	transfers        *prometheus.CounterVec
	transferDuration *prometheus.HistogramVec
	rewardsIssued    prometheus.Counter
}

// New builds the collectors and registers them with registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Reservation operations by name and result.",
		}, []string{"operation", "status"}),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Escrow transfer attempts by kind, asset and outcome.",
		}, []string{"kind", "asset", "outcome"}),
		transferDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Latency of asset transfer calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind", "asset"}),
		rewardsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_issued_total",
			Help:      "Loyalty rewards paid on completed reservations.",
		}),
	}
	for _, collector := range []prometheus.Collector{metrics.operations, metrics.transfers, metrics.transferDuration, metrics.rewardsIssued} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

// LogOperation counts a finished reservation operation.
func (metrics *Metrics) LogOperation(_ context.Context, entry reservation.OperationLog) {
	if metrics == nil {
		return
	}
	operation := entry.Operation
	if operation == "" {
		operation = unknownLabel
	}
	status := entry.Status
	if status == "" {
		status = unknownLabel
	}
	metrics.operations.WithLabelValues(operation, status).Inc()
	if entry.Error == nil && entry.Outcome == reservation.ReservationStatusCompleted && len(entry.TransferIDs) > 0 {
		metrics.rewardsIssued.Inc()
	}
}

// ObserveTransfer records one transfer attempt.
func (metrics *Metrics) ObserveTransfer(kind reservation.TransferKind, assetID reservation.AssetID, outcome string, duration time.Duration) {
	if metrics == nil {
		return
	}
	kindLabel := string(kind)
	if kindLabel == "" {
		kindLabel = unknownLabel
	}
	assetLabel := assetID.String()
	if assetLabel == "" {
		assetLabel = unknownLabel
	}
	metrics.transfers.WithLabelValues(kindLabel, assetLabel, outcome).Inc()
	if duration > 0 {
		metrics.transferDuration.WithLabelValues(kindLabel, assetLabel).Observe(duration.Seconds())
	}
}
