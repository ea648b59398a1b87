package escrow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"go.uber.org/zap"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeRejected  = "rejected"

	defaultCompletedEventLimit = 100000
)

// TransferObserver receives the outcome of every transfer attempt.
type TransferObserver interface {
	ObserveTransfer(kind reservation.TransferKind, assetID reservation.AssetID, outcome string, duration time.Duration)
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) CoordinatorOption {
	return func(coordinator *Coordinator) {
		if logger != nil {
			coordinator.logger = logger
		}
	}
}

// WithTransferObserver wires metrics for transfer attempts.
func WithTransferObserver(observer TransferObserver) CoordinatorOption {
	return func(coordinator *Coordinator) {
		coordinator.observer = observer
	}
}

// WithCompletedEventLimit bounds how many completed event keys are remembered.
func WithCompletedEventLimit(limit int) CoordinatorOption {
	return func(coordinator *Coordinator) {
		if limit > 0 {
			coordinator.completedLimit = limit
		}
	}
}

// Coordinator moves value through external assets on behalf of the ledger and
// refuses to move value twice for the same event.
type Coordinator struct {
	assets         AssetResolver
	logger         *zap.Logger
	observer       TransferObserver
	nowFn          func() time.Time
	mutex          sync.Mutex
	inFlight       map[string]struct{}
	completed      map[string]string
	completedOrder []string
	completedLimit int
}

// NewCoordinator wires a Coordinator over an asset resolver.
func NewCoordinator(assets AssetResolver, options ...CoordinatorOption) (*Coordinator, error) {
	if assets == nil {
		return nil, fmt.Errorf("%w: asset resolver is nil", reservation.ErrInvalidServiceConfig)
	}
	coordinator := &Coordinator{
		assets:         assets,
		logger:         zap.NewNop(),
		nowFn:          time.Now,
		inFlight:       make(map[string]struct{}),
		completed:      make(map[string]string),
		completedLimit: defaultCompletedEventLimit,
	}
	for _, option := range options {
		if option != nil {
			option(coordinator)
		}
	}
	return coordinator, nil
}

// MoveValue performs the transfer described by transfer. Every failure is a
// *reservation.TransferError so callers can skip committing state.
func (coordinator *Coordinator) MoveValue(ctx context.Context, transfer reservation.Transfer) (reservation.TransferReceipt, error) {
	if err := validateTransfer(transfer); err != nil {
		coordinator.observe(transfer, outcomeRejected, 0)
		return reservation.TransferReceipt{}, reservation.NewTransferError(transfer, err)
	}
	eventKey := transfer.EventKey()
	if err := coordinator.begin(eventKey); err != nil {
		coordinator.observe(transfer, outcomeRejected, 0)
		return reservation.TransferReceipt{}, reservation.NewTransferError(transfer, err)
	}
	defer coordinator.finish(eventKey)

	transferer, err := coordinator.assets.Resolve(transfer.Asset)
	if err != nil {
		coordinator.observe(transfer, outcomeRejected, 0)
		return reservation.TransferReceipt{}, reservation.NewTransferError(transfer, err)
	}

	startedAt := coordinator.nowFn()
	transferID, err := transferer.Transfer(ctx, transfer.From, transfer.To, transfer.Amount)
	elapsed := coordinator.nowFn().Sub(startedAt)
	if err != nil {
		coordinator.observe(transfer, outcomeFailed, elapsed)
		coordinator.logger.Warn("transfer failed",
			zap.String("event", eventKey),
			zap.String("asset", transfer.Asset.String()),
			zap.Int64("amount", transfer.Amount.Int64()),
			zap.Error(err),
		)
		return reservation.TransferReceipt{}, reservation.NewTransferError(transfer, err)
	}
	coordinator.observe(transfer, outcomeSucceeded, elapsed)
	coordinator.remember(eventKey, transferID)
	coordinator.logger.Info("transfer completed",
		zap.String("event", eventKey),
		zap.String("asset", transfer.Asset.String()),
		zap.String("transfer_id", transferID),
		zap.Int64("amount", transfer.Amount.Int64()),
	)
	return reservation.TransferReceipt{TransferID: transferID}, nil
}

// HasAsset reports whether a transferer is registered for assetID.
func (coordinator *Coordinator) HasAsset(assetID reservation.AssetID) bool {
	_, err := coordinator.assets.Resolve(assetID)
	return err == nil
}

// CompletedTransfer returns the transfer id recorded for an event key.
func (coordinator *Coordinator) CompletedTransfer(eventKey string) (string, bool) {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()
	transferID, ok := coordinator.completed[eventKey]
	return transferID, ok
}

func (coordinator *Coordinator) begin(eventKey string) error {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()
	if _, done := coordinator.completed[eventKey]; done {
		return fmt.Errorf("%w: %s", ErrDuplicateTransfer, eventKey)
	}
	if _, running := coordinator.inFlight[eventKey]; running {
		return fmt.Errorf("%w: %s in flight", ErrDuplicateTransfer, eventKey)
	}
	coordinator.inFlight[eventKey] = struct{}{}
	return nil
}

func (coordinator *Coordinator) finish(eventKey string) {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()
	delete(coordinator.inFlight, eventKey)
}

func (coordinator *Coordinator) remember(eventKey string, transferID string) {
	coordinator.mutex.Lock()
	defer coordinator.mutex.Unlock()
	coordinator.completed[eventKey] = transferID
	coordinator.completedOrder = append(coordinator.completedOrder, eventKey)
	for len(coordinator.completedOrder) > coordinator.completedLimit {
		evicted := coordinator.completedOrder[0]
		coordinator.completedOrder = coordinator.completedOrder[1:]
		delete(coordinator.completed, evicted)
	}
}

func (coordinator *Coordinator) observe(transfer reservation.Transfer, outcome string, duration time.Duration) {
	if coordinator.observer == nil {
		return
	}
	coordinator.observer.ObserveTransfer(transfer.Kind, transfer.Asset, outcome, duration)
}

func validateTransfer(transfer reservation.Transfer) error {
	if transfer.Asset.IsZero() {
		return fmt.Errorf("%w: asset is required", reservation.ErrInvalidInput)
	}
	if transfer.From.IsZero() || transfer.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", reservation.ErrInvalidInput)
	}
	if transfer.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", reservation.ErrInvalidInput)
	}
	return nil
}
