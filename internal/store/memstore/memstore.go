package memstore

import (
	"context"
	"sync"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
)

const (
	errorOperationStore       = "store"
	errorSubjectConfiguration = "configuration"
	errorSubjectReservation   = "reservation"
	errorSubjectTransfer      = "transfer"
	errorCodeDuplicate        = "duplicate"
	errorCodeGet              = "get"
	errorCodeUpdate           = "update"
	errorCodeClosed           = "closed"
)

type snapshot struct {
	configuration *reservation.Configuration
	nextID        reservation.ReservationID
	reservations  map[reservation.ReservationID]reservation.Record
	transfers     map[string]reservation.TransferRecord
}

func (state *snapshot) clone() *snapshot {
	cloned := &snapshot{
		nextID:       state.nextID,
		reservations: make(map[reservation.ReservationID]reservation.Record, len(state.reservations)),
		transfers:    make(map[string]reservation.TransferRecord, len(state.transfers)),
	}
	if state.configuration != nil {
		configuration := *state.configuration
		cloned.configuration = &configuration
	}
	for reservationID, record := range state.reservations {
		cloned.reservations[reservationID] = record
	}
	for eventKey, record := range state.transfers {
		cloned.transfers[eventKey] = record
	}
	return cloned
}

// Store implements reservation.Store in memory. Transactions are serialized
// and their writes become visible only on commit.
type Store struct {
	mutex sync.Mutex
	state *snapshot
}

// New returns an empty Store.
func New() *Store {
	return &Store{state: &snapshot{
		reservations: make(map[reservation.ReservationID]reservation.Record),
		transfers:    make(map[string]reservation.TransferRecord),
	}}
}

// WithTx executes fn against a private copy of the state and publishes it if fn succeeds.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore reservation.Store) error) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	transaction := &txStore{state: store.state.clone()}
	if err := fn(ctx, transaction); err != nil {
		return err
	}
	store.state = transaction.state
	return nil
}

func (store *Store) InsertConfiguration(ctx context.Context, configuration reservation.Configuration) error {
	return store.WithTx(ctx, func(ctx context.Context, transaction reservation.Store) error {
		return transaction.InsertConfiguration(ctx, configuration)
	})
}

func (store *Store) GetConfiguration(ctx context.Context) (reservation.Configuration, error) {
	return store.read().GetConfiguration(ctx)
}

func (store *Store) AllocateReservationID(ctx context.Context) (reservation.ReservationID, error) {
	var reservationID reservation.ReservationID
	err := store.WithTx(ctx, func(ctx context.Context, transaction reservation.Store) error {
		allocated, err := transaction.AllocateReservationID(ctx)
		reservationID = allocated
		return err
	})
	return reservationID, err
}

func (store *Store) CreateReservation(ctx context.Context, record reservation.Reservation) error {
	return store.WithTx(ctx, func(ctx context.Context, transaction reservation.Store) error {
		return transaction.CreateReservation(ctx, record)
	})
}

func (store *Store) GetReservation(ctx context.Context, reservationID reservation.ReservationID) (reservation.Reservation, error) {
	return store.read().GetReservation(ctx, reservationID)
}

func (store *Store) UpdateReservation(ctx context.Context, record reservation.Reservation, from reservation.ReservationStatus) error {
	return store.WithTx(ctx, func(ctx context.Context, transaction reservation.Store) error {
		return transaction.UpdateReservation(ctx, record, from)
	})
}

func (store *Store) RecordTransfer(ctx context.Context, record reservation.TransferRecord) error {
	return store.WithTx(ctx, func(ctx context.Context, transaction reservation.Store) error {
		return transaction.RecordTransfer(ctx, record)
	})
}

func (store *Store) GetTransferRecord(ctx context.Context, eventKey string) (reservation.TransferRecord, error) {
	return store.read().GetTransferRecord(ctx, eventKey)
}

func (store *Store) read() *txStore {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return &txStore{state: store.state}
}

// txStore operates on the snapshot owned by one transaction.
type txStore struct {
	state *snapshot
}

func (store *txStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore reservation.Store) error) error {
	return fn(ctx, store)
}

func (store *txStore) InsertConfiguration(_ context.Context, configuration reservation.Configuration) error {
	if store.state.configuration != nil {
		return wrapStoreError(errorSubjectConfiguration, errorCodeDuplicate, reservation.ErrAlreadyInitialized)
	}
	store.state.configuration = &configuration
	return nil
}

func (store *txStore) GetConfiguration(context.Context) (reservation.Configuration, error) {
	if store.state.configuration == nil {
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeGet, reservation.ErrNotInitialized)
	}
	return *store.state.configuration, nil
}

func (store *txStore) AllocateReservationID(context.Context) (reservation.ReservationID, error) {
	reservationID := store.state.nextID
	store.state.nextID++
	return reservationID, nil
}

func (store *txStore) CreateReservation(_ context.Context, record reservation.Reservation) error {
	if _, exists := store.state.reservations[record.ID()]; exists {
		return wrapStoreError(errorSubjectReservation, errorCodeDuplicate, reservation.ErrInvalidState)
	}
	store.state.reservations[record.ID()] = record.Record()
	return nil
}

func (store *txStore) GetReservation(_ context.Context, reservationID reservation.ReservationID) (reservation.Reservation, error) {
	record, ok := store.state.reservations[reservationID]
	if !ok {
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, reservation.ErrNotFound)
	}
	restored, err := reservation.RestoreReservation(record)
	if err != nil {
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, err)
	}
	return restored, nil
}

func (store *txStore) UpdateReservation(_ context.Context, record reservation.Reservation, from reservation.ReservationStatus) error {
	current, ok := store.state.reservations[record.ID()]
	if !ok {
		return wrapStoreError(errorSubjectReservation, errorCodeUpdate, reservation.ErrNotFound)
	}
	if current.Status != from.String() {
		return wrapStoreError(errorSubjectReservation, errorCodeClosed, reservation.ErrInvalidState)
	}
	store.state.reservations[record.ID()] = record.Record()
	return nil
}

func (store *txStore) RecordTransfer(_ context.Context, record reservation.TransferRecord) error {
	if _, exists := store.state.transfers[record.EventKey]; exists {
		return wrapStoreError(errorSubjectTransfer, errorCodeDuplicate, reservation.ErrTransferAlreadyRecorded)
	}
	store.state.transfers[record.EventKey] = record
	return nil
}

func (store *txStore) GetTransferRecord(_ context.Context, eventKey string) (reservation.TransferRecord, error) {
	record, ok := store.state.transfers[eventKey]
	if !ok {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeGet, reservation.ErrTransferNotRecorded)
	}
	return record, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return reservation.WrapError(errorOperationStore, subject, code, err)
}
