package escrow

import (
	"context"
	"fmt"
	"sync"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
)

// Transferer is the transfer capability of one external asset. Implementations
// enforce that from authorized the call and holds the balance.
type Transferer interface {
	Transfer(ctx context.Context, from reservation.Principal, to reservation.Principal, amount reservation.Amount) (string, error)
}

// FuncTransferer adapts a callback to the Transferer interface.
type FuncTransferer func(ctx context.Context, from reservation.Principal, to reservation.Principal, amount reservation.Amount) (string, error)

// Transfer delegates to the callback.
func (transferFunc FuncTransferer) Transfer(ctx context.Context, from reservation.Principal, to reservation.Principal, amount reservation.Amount) (string, error) {
	return transferFunc(ctx, from, to, amount)
}

// AssetResolver maps an asset reference to its transfer capability.
type AssetResolver interface {
	Resolve(assetID reservation.AssetID) (Transferer, error)
}

// Registry is an AssetResolver backed by a map.
type Registry struct {
	mutex  sync.RWMutex
	assets map[reservation.AssetID]Transferer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[reservation.AssetID]Transferer)}
}

// Register binds an asset id to a transferer, replacing any previous binding.
func (registry *Registry) Register(assetID reservation.AssetID, transferer Transferer) error {
	if assetID.IsZero() {
		return fmt.Errorf("%w: asset id is required", reservation.ErrInvalidInput)
	}
	if transferer == nil {
		return fmt.Errorf("%w: transferer for %s is nil", reservation.ErrInvalidServiceConfig, assetID)
	}
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.assets[assetID] = transferer
	return nil
}

// Resolve returns the transferer registered for the asset.
func (registry *Registry) Resolve(assetID reservation.AssetID) (Transferer, error) {
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()
	transferer, ok := registry.assets[assetID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, assetID)
	}
	return transferer, nil
}
