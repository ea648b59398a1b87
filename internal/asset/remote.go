package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	assetv1 "github.com/MarkoPoloResearchLab/reservel/api/asset/v1"
	"github.com/MarkoPoloResearchLab/reservel/internal/auth"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultBreakerMaxRequests      = 1
	defaultBreakerInterval         = time.Minute
	defaultBreakerTimeout          = 30 * time.Second
	defaultBreakerFailureThreshold = 5
	defaultRemoteCallTimeout       = 5 * time.Second
)

// BreakerSettings tunes the circuit breaker that guards a remote asset.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerSettings trips after five consecutive transport failures and
// retries after thirty seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      defaultBreakerMaxRequests,
		Interval:         defaultBreakerInterval,
		Timeout:          defaultBreakerTimeout,
		FailureThreshold: defaultBreakerFailureThreshold,
	}
}

// RemoteOption customizes a RemoteAsset.
type RemoteOption func(*RemoteAsset)

// WithBreakerSettings overrides the circuit breaker configuration.
func WithBreakerSettings(settings BreakerSettings) RemoteOption {
	return func(remote *RemoteAsset) {
		remote.breakerSettings = settings
	}
}

// WithCallTimeout bounds each remote call.
func WithCallTimeout(timeout time.Duration) RemoteOption {
	return func(remote *RemoteAsset) {
		if timeout > 0 {
			remote.callTimeout = timeout
		}
	}
}

// WithRemoteLogger records breaker state changes.
func WithRemoteLogger(logger *zap.Logger) RemoteOption {
	return func(remote *RemoteAsset) {
		if logger != nil {
			remote.logger = logger
		}
	}
}

// RemoteAsset moves value through an asset.v1.AssetService. The caller's
// tokens are forwarded so the remote side can check the sender itself.
type RemoteAsset struct {
	id              reservation.AssetID
	client          assetv1.AssetServiceClient
	breaker         *gobreaker.CircuitBreaker[string]
	breakerSettings BreakerSettings
	callTimeout     time.Duration
	logger          *zap.Logger
}

// NewRemoteAsset wraps a connection to an asset service.
func NewRemoteAsset(assetID reservation.AssetID, conn grpc.ClientConnInterface, options ...RemoteOption) (*RemoteAsset, error) {
	if assetID.IsZero() {
		return nil, fmt.Errorf("%w: asset id is required", reservation.ErrInvalidServiceConfig)
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: asset connection is nil", reservation.ErrInvalidServiceConfig)
	}
	remote := &RemoteAsset{
		id:              assetID,
		client:          assetv1.NewAssetServiceClient(conn),
		breakerSettings: DefaultBreakerSettings(),
		callTimeout:     defaultRemoteCallTimeout,
		logger:          zap.NewNop(),
	}
	for _, option := range options {
		if option != nil {
			option(remote)
		}
	}
	threshold := remote.breakerSettings.FailureThreshold
	if threshold == 0 {
		threshold = defaultBreakerFailureThreshold
	}
	remote.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "asset:" + assetID.String(),
		MaxRequests: remote.breakerSettings.MaxRequests,
		Interval:    remote.breakerSettings.Interval,
		Timeout:     remote.breakerSettings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isTransportFailure(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			remote.logger.Warn("asset circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return remote, nil
}

// ID returns the asset reference.
func (remote *RemoteAsset) ID() reservation.AssetID {
	return remote.id
}

// Transfer asks the remote asset to move amount from one holder to another.
func (remote *RemoteAsset) Transfer(ctx context.Context, from reservation.Principal, to reservation.Principal, amount reservation.Amount) (string, error) {
	transferID, err := remote.breaker.Execute(func() (string, error) {
		callCtx, cancel := context.WithTimeout(auth.ForwardCredentials(ctx), remote.callTimeout)
		defer cancel()
		response, err := remote.client.Transfer(callCtx, &assetv1.TransferRequest{
			Asset:  remote.id.String(),
			From:   from.String(),
			To:     to.String(),
			Amount: amount.Int64(),
		})
		if err != nil {
			return "", err
		}
		if response.GetTransferId() == "" {
			return "", status.Error(codes.Internal, "empty transfer id")
		}
		return response.GetTransferId(), nil
	})
	if err != nil {
		return "", remote.translateError(err)
	}
	return transferID, nil
}

// Balance reports a holder's balance on the remote asset.
func (remote *RemoteAsset) Balance(ctx context.Context, holder reservation.Principal) (reservation.Amount, error) {
	callCtx, cancel := context.WithTimeout(auth.ForwardCredentials(ctx), remote.callTimeout)
	defer cancel()
	response, err := remote.client.Balance(callCtx, &assetv1.BalanceRequest{Asset: remote.id.String(), Holder: holder.String()})
	if err != nil {
		return 0, remote.translateError(err)
	}
	return reservation.Amount(response.GetAmount()), nil
}

func (remote *RemoteAsset) translateError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s: %v", ErrAssetUnavailable, remote.id, err)
	}
	grpcStatus, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch grpcStatus.Code() {
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s", reservation.ErrUnauthorized, grpcStatus.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", reservation.ErrInvalidInput, grpcStatus.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", reservation.ErrInvalidInput, grpcStatus.Message())
	case codes.FailedPrecondition:
		switch grpcStatus.Message() {
		case errorCodeInsufficientBalance:
			return fmt.Errorf("%w: %s", ErrInsufficientBalance, remote.id)
		case errorCodeAssetPaused:
			return fmt.Errorf("%w: %s", ErrAssetPaused, remote.id)
		}
	}
	if isTransportFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrAssetUnavailable, remote.id, err)
	}
	return err
}

func isTransportFailure(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Internal, codes.Unknown, codes.Aborted:
		return true
	default:
		return false
	}
}
