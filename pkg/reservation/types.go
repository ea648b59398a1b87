package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Principal identifies a party able to authorize actions (business, customer or owner).
type Principal struct {
	value string
}

// AssetID references a transfer-capable asset.
type AssetID struct {
	value string
}

// ReservationID is the sequential identifier allocated at creation.
type ReservationID uint64

// Amount is a non-negative quantity in the asset's smallest unit.
type Amount int64

// PartySize is the number of guests on a reservation.
type PartySize uint32

// MetadataJSON stores caller supplied reservation details.
type MetadataJSON struct {
	value string
}

// NewPrincipal validates and normalizes a principal.
func NewPrincipal(raw string) (Principal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Principal{}, fmt.Errorf("%w: empty principal", ErrInvalidInput)
	}
	return Principal{value: trimmed}, nil
}

// String returns the normalized principal.
func (principal Principal) String() string {
	return principal.value
}

// IsZero reports whether the principal was never set.
func (principal Principal) IsZero() bool {
	return principal.value == ""
}

// NewAssetID validates and normalizes an asset reference.
func NewAssetID(raw string) (AssetID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AssetID{}, fmt.Errorf("%w: empty asset id", ErrInvalidInput)
	}
	return AssetID{value: trimmed}, nil
}

// String returns the normalized asset reference.
func (assetID AssetID) String() string {
	return assetID.value
}

// IsZero reports whether the asset was never set.
func (assetID AssetID) IsZero() bool {
	return assetID.value == ""
}

// ParseReservationID parses a decimal reservation id.
func ParseReservationID(raw string) (ReservationID, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: reservation id %q", ErrInvalidInput, raw)
	}
	return ReservationID(value), nil
}

// Uint64 returns the raw identifier.
func (reservationID ReservationID) Uint64() uint64 {
	return uint64(reservationID)
}

// String returns the decimal identifier.
func (reservationID ReservationID) String() string {
	return strconv.FormatUint(uint64(reservationID), 10)
}

// NewAmount validates an amount and ensures it is not negative.
func NewAmount(raw int64) (Amount, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return Amount(raw), nil
}

// Int64 returns the raw amount.
func (amount Amount) Int64() int64 {
	return int64(amount)
}

// NewPartySize validates a party size and ensures it is positive.
func NewPartySize(raw int64) (PartySize, error) {
	if raw <= 0 || raw > math.MaxUint32 {
		return 0, fmt.Errorf("%w: party size must be between 1 and %d", ErrInvalidInput, uint32(math.MaxUint32))
	}
	return PartySize(raw), nil
}

// Uint32 returns the raw party size.
func (partySize PartySize) Uint32() uint32 {
	return uint32(partySize)
}

// NewMetadataJSON validates metadata string (defaulting to "{}" for empty inputs).
func NewMetadataJSON(raw string) (MetadataJSON, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		normalized = "{}"
	}
	if !json.Valid([]byte(normalized)) {
		return MetadataJSON{}, fmt.Errorf("%w: metadata must be valid json", ErrInvalidInput)
	}
	return MetadataJSON{value: normalized}, nil
}

// String returns the normalized JSON blob.
func (metadata MetadataJSON) String() string {
	if metadata.value == "" {
		return "{}"
	}
	return metadata.value
}

// Configuration is the process-wide singleton set by Initialize.
type Configuration struct {
	Owner       Principal
	RewardAsset AssetID
}

// NewConfiguration validates the owner and reward asset.
func NewConfiguration(owner Principal, rewardAsset AssetID) (Configuration, error) {
	if owner.IsZero() {
		return Configuration{}, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if rewardAsset.IsZero() {
		return Configuration{}, fmt.Errorf("%w: reward asset is required", ErrInvalidInput)
	}
	return Configuration{Owner: owner, RewardAsset: rewardAsset}, nil
}

// MaxRewardDecimals bounds RewardPolicy.Decimals; 10^19 no longer fits an int64.
const MaxRewardDecimals uint8 = 18

// RewardPolicy defines the loyalty reward as Units scaled by 10^Decimals.
type RewardPolicy struct {
	Units    int64
	Decimals uint8
}

// DefaultRewardPolicy pays 100 whole tokens with 7 decimal places.
func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{Units: defaultRewardUnits, Decimals: defaultRewardDecimals}
}

// Amount returns the reward in smallest units.
func (policy RewardPolicy) Amount() (Amount, error) {
	if policy.Units <= 0 {
		return 0, fmt.Errorf("%w: reward units must be positive", ErrInvalidServiceConfig)
	}
	if policy.Decimals > MaxRewardDecimals {
		return 0, fmt.Errorf("%w: reward decimals must be at most %d", ErrInvalidServiceConfig, MaxRewardDecimals)
	}
	amount := policy.Units
	for index := uint8(0); index < policy.Decimals; index++ {
		if amount > math.MaxInt64/10 {
			return 0, fmt.Errorf("%w: reward amount overflows", ErrInvalidServiceConfig)
		}
		amount *= 10
	}
	return Amount(amount), nil
}

// TransferKind names the logical event a value movement belongs to.
type TransferKind string

const (
	TransferKindPayment TransferKind = "payment"
	TransferKindReward  TransferKind = "reward"
)

// Transfer describes one value movement requested by the ledger.
type Transfer struct {
	Kind          TransferKind
	ReservationID ReservationID
	Asset         AssetID
	From          Principal
	To            Principal
	Amount        Amount
}

// EventKey identifies the logical event; at most one transfer succeeds per key.
func (transfer Transfer) EventKey() string {
	return string(transfer.Kind) + eventKeyDelimiter + transfer.ReservationID.String()
}

// TransferReceipt is returned by a successful value movement.
type TransferReceipt struct {
	TransferID string
}

// TransferRecord is the durable receipt of a completed transfer, keyed by its event.
type TransferRecord struct {
	EventKey      string
	Kind          TransferKind
	ReservationID ReservationID
	Asset         AssetID
	From          Principal
	To            Principal
	Amount        Amount
	TransferID    string
}

// NewTransferRecord pairs a transfer with the receipt it produced.
func NewTransferRecord(transfer Transfer, receipt TransferReceipt) TransferRecord {
	return TransferRecord{
		EventKey:      transfer.EventKey(),
		Kind:          transfer.Kind,
		ReservationID: transfer.ReservationID,
		Asset:         transfer.Asset,
		From:          transfer.From,
		To:            transfer.To,
		Amount:        transfer.Amount,
		TransferID:    receipt.TransferID,
	}
}

// ValueMover moves value between principals on behalf of the ledger.
type ValueMover interface {
	MoveValue(ctx context.Context, transfer Transfer) (TransferReceipt, error)
}

// AssetCatalog reports whether value can be moved in an asset.
type AssetCatalog interface {
	HasAsset(assetID AssetID) bool
}

// Authorizer verifies that the current caller acts as the given principal.
type Authorizer interface {
	RequireAuth(ctx context.Context, principal Principal) error
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, principal Principal) error

// RequireAuth delegates to the wrapped function.
func (authorizerFunc AuthorizerFunc) RequireAuth(ctx context.Context, principal Principal) error {
	return authorizerFunc(ctx, principal)
}

// Store is the persistence contract used by Service.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	InsertConfiguration(ctx context.Context, configuration Configuration) error
	GetConfiguration(ctx context.Context) (Configuration, error)
	AllocateReservationID(ctx context.Context) (ReservationID, error)
	CreateReservation(ctx context.Context, reservation Reservation) error
	GetReservation(ctx context.Context, reservationID ReservationID) (Reservation, error)
	UpdateReservation(ctx context.Context, reservation Reservation, from ReservationStatus) error
	RecordTransfer(ctx context.Context, record TransferRecord) error
	GetTransferRecord(ctx context.Context, eventKey string) (TransferRecord, error)
}
