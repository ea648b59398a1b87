package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

type stubState struct {
	configuration *Configuration
	nextID        ReservationID
	reservations  map[ReservationID]Reservation
	transfers     map[string]TransferRecord
}

func (state *stubState) clone() *stubState {
	cloned := &stubState{
		nextID:       state.nextID,
		reservations: make(map[ReservationID]Reservation, len(state.reservations)),
		transfers:    make(map[string]TransferRecord, len(state.transfers)),
	}
	for eventKey, record := range state.transfers {
		cloned.transfers[eventKey] = record
	}
	if state.configuration != nil {
		configuration := *state.configuration
		cloned.configuration = &configuration
	}
	for reservationID, reservation := range state.reservations {
		cloned.reservations[reservationID] = reservation
	}
	return cloned
}

// stubStore keeps state in maps and applies a transaction only when fn succeeds.
type stubStore struct {
	mutex     sync.Mutex
	state     *stubState
	updateErr error
	commits   int
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{state: &stubState{
		reservations: make(map[ReservationID]Reservation),
		transfers:    make(map[string]TransferRecord),
	}}
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	transaction := &stubTxStore{state: store.state.clone(), updateErr: store.updateErr}
	if err := fn(ctx, transaction); err != nil {
		return err
	}
	store.state = transaction.state
	store.commits++
	return nil
}

func (store *stubStore) view() *stubTxStore {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return &stubTxStore{state: store.state.clone()}
}

func (store *stubStore) InsertConfiguration(ctx context.Context, configuration Configuration) error {
	return store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		return txStore.InsertConfiguration(ctx, configuration)
	})
}

func (store *stubStore) GetConfiguration(ctx context.Context) (Configuration, error) {
	return store.view().GetConfiguration(ctx)
}

func (store *stubStore) AllocateReservationID(ctx context.Context) (ReservationID, error) {
	return 0, errors.New("allocate outside transaction")
}

func (store *stubStore) CreateReservation(ctx context.Context, reservation Reservation) error {
	return errors.New("create outside transaction")
}

func (store *stubStore) GetReservation(ctx context.Context, reservationID ReservationID) (Reservation, error) {
	return store.view().GetReservation(ctx, reservationID)
}

func (store *stubStore) UpdateReservation(ctx context.Context, reservation Reservation, from ReservationStatus) error {
	return errors.New("update outside transaction")
}

func (store *stubStore) RecordTransfer(ctx context.Context, record TransferRecord) error {
	return errors.New("record outside transaction")
}

func (store *stubStore) GetTransferRecord(ctx context.Context, eventKey string) (TransferRecord, error) {
	return store.view().GetTransferRecord(ctx, eventKey)
}

func (store *stubStore) putTransfer(record TransferRecord) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.transfers[record.EventKey] = record
}

func (store *stubStore) mustReservation(test *testing.T, reservationID ReservationID) Reservation {
	test.Helper()
	reservation, err := store.GetReservation(context.Background(), reservationID)
	if err != nil {
		test.Fatalf("get reservation %s: %v", reservationID, err)
	}
	return reservation
}

func (store *stubStore) put(reservation Reservation) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.state.reservations[reservation.ID()] = reservation
	if reservation.ID() >= store.state.nextID {
		store.state.nextID = reservation.ID() + 1
	}
}

type stubTxStore struct {
	state     *stubState
	updateErr error
}

func (store *stubTxStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	return fn(ctx, store)
}

func (store *stubTxStore) InsertConfiguration(_ context.Context, configuration Configuration) error {
	if store.state.configuration != nil {
		return ErrAlreadyInitialized
	}
	store.state.configuration = &configuration
	return nil
}

func (store *stubTxStore) GetConfiguration(context.Context) (Configuration, error) {
	if store.state.configuration == nil {
		return Configuration{}, ErrNotInitialized
	}
	return *store.state.configuration, nil
}

func (store *stubTxStore) AllocateReservationID(context.Context) (ReservationID, error) {
	reservationID := store.state.nextID
	store.state.nextID++
	return reservationID, nil
}

func (store *stubTxStore) CreateReservation(_ context.Context, reservation Reservation) error {
	if _, exists := store.state.reservations[reservation.ID()]; exists {
		return fmt.Errorf("duplicate reservation %s", reservation.ID())
	}
	store.state.reservations[reservation.ID()] = reservation
	return nil
}

func (store *stubTxStore) GetReservation(_ context.Context, reservationID ReservationID) (Reservation, error) {
	reservation, ok := store.state.reservations[reservationID]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	return reservation, nil
}

func (store *stubTxStore) UpdateReservation(_ context.Context, reservation Reservation, from ReservationStatus) error {
	if store.updateErr != nil {
		return store.updateErr
	}
	current, ok := store.state.reservations[reservation.ID()]
	if !ok {
		return ErrNotFound
	}
	if current.Status() != from {
		return ErrInvalidState
	}
	store.state.reservations[reservation.ID()] = reservation
	return nil
}

func (store *stubTxStore) RecordTransfer(_ context.Context, record TransferRecord) error {
	if _, exists := store.state.transfers[record.EventKey]; exists {
		return ErrTransferAlreadyRecorded
	}
	store.state.transfers[record.EventKey] = record
	return nil
}

func (store *stubTxStore) GetTransferRecord(_ context.Context, eventKey string) (TransferRecord, error) {
	record, ok := store.state.transfers[eventKey]
	if !ok {
		return TransferRecord{}, ErrTransferNotRecorded
	}
	return record, nil
}

// knownAssets is an AssetCatalog over a fixed set of asset ids.
type knownAssets map[string]bool

func (assets knownAssets) HasAsset(assetID AssetID) bool {
	return assets[assetID.String()]
}

// recordingMover remembers every transfer and fails while failWith is set.
type recordingMover struct {
	mutex     sync.Mutex
	transfers []Transfer
	failWith  error
}

func (mover *recordingMover) MoveValue(_ context.Context, transfer Transfer) (TransferReceipt, error) {
	mover.mutex.Lock()
	defer mover.mutex.Unlock()
	if mover.failWith != nil {
		return TransferReceipt{}, mover.failWith
	}
	mover.transfers = append(mover.transfers, transfer)
	return TransferReceipt{TransferID: fmt.Sprintf("%s-%d", transfer.EventKey(), len(mover.transfers))}, nil
}

func (mover *recordingMover) count() int {
	mover.mutex.Lock()
	defer mover.mutex.Unlock()
	return len(mover.transfers)
}

// allowList authorizes exactly the principals it contains.
type allowList map[string]bool

func (principals allowList) RequireAuth(_ context.Context, principal Principal) error {
	if !principals[principal.String()] {
		return fmt.Errorf("%s did not authorize", principal)
	}
	return nil
}

func mustPrincipal(test *testing.T, raw string) Principal {
	test.Helper()
	principal, err := NewPrincipal(raw)
	if err != nil {
		test.Fatalf("principal: %v", err)
	}
	return principal
}

func mustAssetID(test *testing.T, raw string) AssetID {
	test.Helper()
	assetID, err := NewAssetID(raw)
	if err != nil {
		test.Fatalf("asset id: %v", err)
	}
	return assetID
}

func mustPartySize(test *testing.T, raw int64) PartySize {
	test.Helper()
	partySize, err := NewPartySize(raw)
	if err != nil {
		test.Fatalf("party size: %v", err)
	}
	return partySize
}

func mustAmount(test *testing.T, raw int64) Amount {
	test.Helper()
	amount, err := NewAmount(raw)
	if err != nil {
		test.Fatalf("amount: %v", err)
	}
	return amount
}

func mustMetadata(test *testing.T, raw string) MetadataJSON {
	test.Helper()
	metadata, err := NewMetadataJSON(raw)
	if err != nil {
		test.Fatalf("metadata: %v", err)
	}
	return metadata
}

func mustNewService(test *testing.T, store Store, authorizer Authorizer, mover ValueMover, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(store, authorizer, mover, func() int64 { return 4242 }, options...)
	if err != nil {
		test.Fatalf("service: %v", err)
	}
	return service
}
