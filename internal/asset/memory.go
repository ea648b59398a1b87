// Package asset provides transfer-capable assets: an in-process balance book,
// its gRPC service and a circuit-broken remote client.
package asset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/google/uuid"
)

var (
	// ErrInsufficientBalance is returned when the sender cannot cover the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAssetPaused is returned while transfers are suspended.
	ErrAssetPaused = errors.New("asset paused")
	// ErrAssetUnavailable is returned when a remote asset cannot be reached.
	ErrAssetUnavailable = errors.New("asset unavailable")
)

// MemoryAsset keeps balances in memory and moves them on Transfer. The sender
// must have authorized the call.
type MemoryAsset struct {
	id         reservation.AssetID
	authorizer reservation.Authorizer
	newID      func() string
	mutex      sync.Mutex
	balances   map[reservation.Principal]reservation.Amount
	paused     bool
}

// NewMemoryAsset creates an empty asset.
func NewMemoryAsset(assetID reservation.AssetID, authorizer reservation.Authorizer) (*MemoryAsset, error) {
	if assetID.IsZero() {
		return nil, fmt.Errorf("%w: asset id is required", reservation.ErrInvalidServiceConfig)
	}
	if authorizer == nil {
		return nil, fmt.Errorf("%w: authorizer dependency is nil", reservation.ErrInvalidServiceConfig)
	}
	return &MemoryAsset{
		id:         assetID,
		authorizer: authorizer,
		newID:      uuid.NewString,
		balances:   make(map[reservation.Principal]reservation.Amount),
	}, nil
}

// ID returns the asset reference.
func (asset *MemoryAsset) ID() reservation.AssetID {
	return asset.id
}

// Mint credits holder with amount.
func (asset *MemoryAsset) Mint(holder reservation.Principal, amount reservation.Amount) error {
	if holder.IsZero() {
		return fmt.Errorf("%w: holder is required", reservation.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: mint amount must be positive", reservation.ErrInvalidInput)
	}
	asset.mutex.Lock()
	defer asset.mutex.Unlock()
	current := asset.balances[holder]
	if current > math.MaxInt64-amount {
		return fmt.Errorf("%w: balance overflow", reservation.ErrInvalidInput)
	}
	asset.balances[holder] = current + amount
	return nil
}

// Balance returns the holder's balance.
func (asset *MemoryAsset) Balance(_ context.Context, holder reservation.Principal) (reservation.Amount, error) {
	asset.mutex.Lock()
	defer asset.mutex.Unlock()
	return asset.balances[holder], nil
}

// SetPaused suspends or resumes transfers.
func (asset *MemoryAsset) SetPaused(paused bool) {
	asset.mutex.Lock()
	defer asset.mutex.Unlock()
	asset.paused = paused
}

// Transfer moves amount from one holder to another and returns a transfer id.
func (asset *MemoryAsset) Transfer(ctx context.Context, from reservation.Principal, to reservation.Principal, amount reservation.Amount) (string, error) {
	if from.IsZero() || to.IsZero() {
		return "", fmt.Errorf("%w: from and to are required", reservation.ErrInvalidInput)
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: transfer amount must be positive", reservation.ErrInvalidInput)
	}
	if err := asset.authorizer.RequireAuth(ctx, from); err != nil {
		if errors.Is(err, reservation.ErrUnauthorized) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", reservation.ErrUnauthorized, err)
	}

	asset.mutex.Lock()
	defer asset.mutex.Unlock()
	if asset.paused {
		return "", fmt.Errorf("%w: %s", ErrAssetPaused, asset.id)
	}
	fromBalance := asset.balances[from]
	if fromBalance < amount {
		return "", fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, from, fromBalance.Int64(), asset.id, amount.Int64())
	}
	if from != to {
		toBalance := asset.balances[to]
		if toBalance > math.MaxInt64-amount {
			return "", fmt.Errorf("%w: balance overflow", reservation.ErrInvalidInput)
		}
		asset.balances[from] = fromBalance - amount
		asset.balances[to] = toBalance + amount
	}
	return asset.newID(), nil
}
