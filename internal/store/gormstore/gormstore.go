package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	configurationRowID        = 1
	counterNameReservations   = "reservations"
	defaultMetadataJSON       = "{}"
	pgUniqueViolationCode     = "23505"
	sqliteConstraintCode      = 19
	errorOperationStore       = "store"
	errorSubjectConfiguration = "configuration"
	errorSubjectCounter       = "counter"
	errorSubjectReservation   = "reservation"
	errorSubjectTransfer      = "transfer"
	errorCodeAllocate         = "allocate"
	errorCodeCreate           = "create"
	errorCodeDuplicate        = "duplicate"
	errorCodeGet              = "get"
	errorCodeInsert           = "insert"
	errorCodeInvalid          = "invalid"
	errorCodeMigrate          = "migrate"
	errorCodeUpdate           = "update"
)

// Store implements reservation.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the tables and seeds the reservation counter.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return wrapStoreError(errorSubjectCounter, errorCodeMigrate, err)
	}
	return SeedCounter(ctx, db)
}

// SeedCounter inserts the reservation counter row if it is missing.
func SeedCounter(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ReservationCounter{Name: counterNameReservations, NextID: 0}).Error
	if err != nil {
		return wrapStoreError(errorSubjectCounter, errorCodeMigrate, err)
	}
	return nil
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore reservation.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) InsertConfiguration(ctx context.Context, configuration reservation.Configuration) error {
	model := Configuration{
		ConfigurationID: configurationRowID,
		Owner:           configuration.Owner.String(),
		RewardAsset:     configuration.RewardAsset.String(),
		CreatedAt:       time.Now().UTC(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectConfiguration, errorCodeDuplicate, reservation.ErrAlreadyInitialized)
	}
	if err != nil {
		return wrapStoreError(errorSubjectConfiguration, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetConfiguration(ctx context.Context) (reservation.Configuration, error) {
	var model Configuration
	err := store.db.WithContext(ctx).
		Where("configuration_id = ?", configurationRowID).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeGet, reservation.ErrNotInitialized)
		}
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeGet, err)
	}
	owner, err := reservation.NewPrincipal(model.Owner)
	if err != nil {
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeInvalid, err)
	}
	rewardAsset, err := reservation.NewAssetID(model.RewardAsset)
	if err != nil {
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeInvalid, err)
	}
	return reservation.Configuration{Owner: owner, RewardAsset: rewardAsset}, nil
}

// AllocateReservationID bumps the counter first so the row stays locked until commit.
func (store *Store) AllocateReservationID(ctx context.Context) (reservation.ReservationID, error) {
	result := store.db.WithContext(ctx).
		Model(&ReservationCounter{}).
		Where("name = ?", counterNameReservations).
		Update("next_id", gorm.Expr("next_id + 1"))
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectCounter, errorCodeAllocate, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, wrapStoreError(errorSubjectCounter, errorCodeAllocate, errors.New("counter row missing"))
	}
	var counter ReservationCounter
	err := store.db.WithContext(ctx).
		Where("name = ?", counterNameReservations).
		Take(&counter).Error
	if err != nil {
		return 0, wrapStoreError(errorSubjectCounter, errorCodeAllocate, err)
	}
	return reservation.ReservationID(counter.NextID - 1), nil
}

func (store *Store) CreateReservation(ctx context.Context, record reservation.Reservation) error {
	model := toModel(record)
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectReservation, errorCodeDuplicate, reservation.ErrInvalidState)
	}
	if err != nil {
		return wrapStoreError(errorSubjectReservation, errorCodeCreate, err)
	}
	return nil
}

func (store *Store) GetReservation(ctx context.Context, reservationID reservation.ReservationID) (reservation.Reservation, error) {
	var model Reservation
	err := store.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reservation_id = ?", reservationID.Uint64()).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, reservation.ErrNotFound)
		}
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, err)
	}
	restored, err := reservation.RestoreReservation(fromModel(model))
	if err != nil {
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeInvalid, err)
	}
	return restored, nil
}

// UpdateReservation writes the mutable columns when the stored status still equals from.
func (store *Store) UpdateReservation(ctx context.Context, record reservation.Reservation, from reservation.ReservationStatus) error {
	model := toModel(record)
	result := store.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("reservation_id = ? AND status = ?", model.ReservationID, from.String()).
		Updates(map[string]interface{}{
			"customer":            model.Customer,
			"status":              model.Status,
			"reward_issued":       model.RewardIssued,
			"payment_transfer_id": model.PaymentTransferID,
			"reward_transfer_id":  model.RewardTransferID,
			"metadata":            model.Metadata,
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return wrapStoreError(errorSubjectReservation, errorCodeUpdate, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorSubjectReservation, errorCodeUpdate, reservation.ErrInvalidState)
	}
	return nil
}

// RecordTransfer stores the receipt of a completed transfer under its event key.
func (store *Store) RecordTransfer(ctx context.Context, record reservation.TransferRecord) error {
	model := TransferRecord{
		EventKey:      record.EventKey,
		Kind:          string(record.Kind),
		ReservationID: record.ReservationID.Uint64(),
		Asset:         record.Asset.String(),
		FromPrincipal: record.From.String(),
		ToPrincipal:   record.To.String(),
		Amount:        record.Amount.Int64(),
		TransferID:    record.TransferID,
		CreatedAt:     time.Now().UTC(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectTransfer, errorCodeDuplicate, reservation.ErrTransferAlreadyRecorded)
	}
	if err != nil {
		return wrapStoreError(errorSubjectTransfer, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetTransferRecord(ctx context.Context, eventKey string) (reservation.TransferRecord, error) {
	var model TransferRecord
	err := store.db.WithContext(ctx).
		Where("event_key = ?", eventKey).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeGet, reservation.ErrTransferNotRecorded)
		}
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeGet, err)
	}
	record, err := transferFromModel(model)
	if err != nil {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeInvalid, err)
	}
	return record, nil
}

func transferFromModel(model TransferRecord) (reservation.TransferRecord, error) {
	assetID, err := reservation.NewAssetID(model.Asset)
	if err != nil {
		return reservation.TransferRecord{}, err
	}
	from, err := reservation.NewPrincipal(model.FromPrincipal)
	if err != nil {
		return reservation.TransferRecord{}, err
	}
	to, err := reservation.NewPrincipal(model.ToPrincipal)
	if err != nil {
		return reservation.TransferRecord{}, err
	}
	amount, err := reservation.NewAmount(model.Amount)
	if err != nil {
		return reservation.TransferRecord{}, err
	}
	return reservation.TransferRecord{
		EventKey:      model.EventKey,
		Kind:          reservation.TransferKind(model.Kind),
		ReservationID: reservation.ReservationID(model.ReservationID),
		Asset:         assetID,
		From:          from,
		To:            to,
		Amount:        amount,
		TransferID:    model.TransferID,
	}, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return reservation.WrapError(errorOperationStore, subject, code, err)
}

func toModel(record reservation.Reservation) Reservation {
	flat := record.Record()
	now := time.Now().UTC()
	return Reservation{
		ReservationID:     flat.ID.Uint64(),
		Business:          flat.Business,
		Customer:          optionalString(flat.Customer),
		ScheduledUnixUTC:  flat.ScheduledUnixUTC,
		PartySize:         flat.PartySize,
		PaymentAmount:     flat.PaymentAmount,
		PaymentAsset:      flat.PaymentAsset,
		Status:            flat.Status,
		RewardIssued:      flat.RewardIssued,
		Metadata:          datatypesJSON(flat.MetadataJSON),
		PaymentTransferID: optionalString(flat.PaymentTransferID),
		RewardTransferID:  optionalString(flat.RewardTransferID),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func fromModel(model Reservation) reservation.Record {
	return reservation.Record{
		ID:                reservation.ReservationID(model.ReservationID),
		Business:          model.Business,
		Customer:          stringOrEmpty(model.Customer),
		ScheduledUnixUTC:  model.ScheduledUnixUTC,
		PartySize:         model.PartySize,
		PaymentAmount:     model.PaymentAmount,
		PaymentAsset:      model.PaymentAsset,
		Status:            model.Status,
		RewardIssued:      model.RewardIssued,
		MetadataJSON:      string(model.Metadata),
		PaymentTransferID: stringOrEmpty(model.PaymentTransferID),
		RewardTransferID:  stringOrEmpty(model.RewardTransferID),
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func datatypesJSON(raw string) datatypes.JSON {
	if raw == "" {
		return datatypes.JSON([]byte(defaultMetadataJSON))
	}
	return datatypes.JSON([]byte(raw))
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
