package pgstore

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	configurationRowID        = 1
	counterNameReservations   = "reservations"
	pgUniqueViolationCode     = "23505"
	errorOperationStore       = "store"
	errorSubjectConfiguration = "configuration"
	errorSubjectCounter       = "counter"
	errorSubjectReservation   = "reservation"
	errorSubjectSchema        = "schema"
	errorSubjectTransfer      = "transfer"
	errorSubjectTransaction   = "transaction"
	errorCodeAllocate         = "allocate"
	errorCodeApply            = "apply"
	errorCodeBegin            = "begin"
	errorCodeCommit           = "commit"
	errorCodeCreate           = "create"
	errorCodeDuplicate        = "duplicate"
	errorCodeGet              = "get"
	errorCodeInsert           = "insert"
	errorCodeInvalid          = "invalid"
	errorCodeUpdate           = "update"

	// Schema creates the tables shared with the gorm store.
	Schema = `
		do $$ begin
			create type reservation_status as enum ('pending', 'confirmed', 'no_show', 'completed', 'cancelled');
		exception when duplicate_object then null;
		end $$;

		create table if not exists configurations (
			configuration_id integer primary key,
			owner text not null,
			reward_asset text not null,
			created_at timestamptz not null default now()
		);

		create table if not exists reservation_counters (
			name text primary key,
			next_id bigint not null
		);

		insert into reservation_counters(name, next_id) values ('reservations', 0)
		on conflict (name) do nothing;

		create table if not exists reservations (
			reservation_id bigint primary key,
			business text not null,
			customer text,
			scheduled_unix_utc bigint not null check (scheduled_unix_utc >= 0),
			party_size bigint not null check (party_size > 0),
			payment_amount bigint not null check (payment_amount >= 0),
			payment_asset text not null,
			status reservation_status not null,
			reward_issued boolean not null default false,
			metadata jsonb not null default '{}'::jsonb,
			payment_transfer_id text,
			reward_transfer_id text,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		);

		create index if not exists idx_reservations_business on reservations(business);
		create index if not exists idx_reservations_customer on reservations(customer);

		create table if not exists transfer_records (
			event_key text primary key,
			kind text not null,
			reservation_id bigint not null,
			asset text not null,
			from_principal text not null,
			to_principal text not null,
			amount bigint not null check (amount > 0),
			transfer_id text not null,
			created_at timestamptz not null default now()
		);

		create index if not exists idx_transfer_records_reservation on transfer_records(reservation_id);
	`

	sqlInsertConfiguration = `
		insert into configurations(configuration_id, owner, reward_asset)
		values ($1, $2, $3)
	`

	sqlSelectConfiguration = `
		select owner, reward_asset from configurations where configuration_id = $1
	`

	sqlAllocateReservationID = `
		update reservation_counters
		set next_id = next_id + 1
		where name = $1
		returning next_id - 1
	`

	sqlInsertReservation = `
		insert into reservations(
			reservation_id, business, customer, scheduled_unix_utc, party_size,
			payment_amount, payment_asset, status, reward_issued, metadata,
			payment_transfer_id, reward_transfer_id
		)
		values (
			$1, $2, nullif($3, ''), $4, $5,
			$6, $7, $8, $9, coalesce(nullif($10, ''), '{}')::jsonb,
			nullif($11, ''), nullif($12, '')
		)
	`

	sqlSelectReservation = `
		select
			reservation_id,
			business,
			coalesce(customer, ''),
			scheduled_unix_utc,
			party_size,
			payment_amount,
			payment_asset,
			status::text,
			reward_issued,
			metadata::text,
			coalesce(payment_transfer_id, ''),
			coalesce(reward_transfer_id, '')
		from reservations
		where reservation_id = $1
	`

	sqlLockSuffix = ` for update`

	sqlUpdateReservation = `
		update reservations
		set customer = nullif($3, ''),
			status = $4,
			reward_issued = $5,
			payment_transfer_id = nullif($6, ''),
			reward_transfer_id = nullif($7, ''),
			metadata = coalesce(nullif($8, ''), '{}')::jsonb,
			updated_at = now()
		where reservation_id = $1 and status = $2
	`

	sqlInsertTransferRecord = `
		insert into transfer_records(
			event_key, kind, reservation_id, asset, from_principal, to_principal, amount, transfer_id
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	sqlSelectTransferRecord = `
		select event_key, kind, reservation_id, asset, from_principal, to_principal, amount, transfer_id
		from transfer_records
		where event_key = $1
	`
)

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// Store implements reservation.Store using a pgx connection pool (autocommit).
type Store struct {
	pool *pgxpool.Pool
}

// TxStore implements reservation.Store for an active transaction.
type TxStore struct {
	tx pgx.Tx
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeApply, err)
	}
	return nil
}

func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore reservation.Store) error) error {
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	transactionStore := &TxStore{tx: tx}
	if err := fn(ctx, transactionStore); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) InsertConfiguration(ctx context.Context, configuration reservation.Configuration) error {
	return insertConfiguration(ctx, store.pool, configuration)
}

func (store *Store) GetConfiguration(ctx context.Context) (reservation.Configuration, error) {
	return selectConfiguration(ctx, store.pool)
}

func (store *Store) AllocateReservationID(ctx context.Context) (reservation.ReservationID, error) {
	return allocateReservationID(ctx, store.pool)
}

func (store *Store) CreateReservation(ctx context.Context, record reservation.Reservation) error {
	return insertReservation(ctx, store.pool, record)
}

func (store *Store) GetReservation(ctx context.Context, reservationID reservation.ReservationID) (reservation.Reservation, error) {
	return selectReservation(ctx, store.pool, reservationID, false)
}

func (store *Store) UpdateReservation(ctx context.Context, record reservation.Reservation, from reservation.ReservationStatus) error {
	return updateReservation(ctx, store.pool, record, from)
}

func (store *Store) RecordTransfer(ctx context.Context, record reservation.TransferRecord) error {
	return insertTransferRecord(ctx, store.pool, record)
}

func (store *Store) GetTransferRecord(ctx context.Context, eventKey string) (reservation.TransferRecord, error) {
	return selectTransferRecord(ctx, store.pool, eventKey)
}

// WithTx reuses the active transaction.
func (store *TxStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore reservation.Store) error) error {
	return fn(ctx, store)
}

func (store *TxStore) InsertConfiguration(ctx context.Context, configuration reservation.Configuration) error {
	return insertConfiguration(ctx, store.tx, configuration)
}

func (store *TxStore) GetConfiguration(ctx context.Context) (reservation.Configuration, error) {
	return selectConfiguration(ctx, store.tx)
}

func (store *TxStore) AllocateReservationID(ctx context.Context) (reservation.ReservationID, error) {
	return allocateReservationID(ctx, store.tx)
}

func (store *TxStore) CreateReservation(ctx context.Context, record reservation.Reservation) error {
	return insertReservation(ctx, store.tx, record)
}

// GetReservation locks the row until the transaction ends.
func (store *TxStore) GetReservation(ctx context.Context, reservationID reservation.ReservationID) (reservation.Reservation, error) {
	return selectReservation(ctx, store.tx, reservationID, true)
}

func (store *TxStore) UpdateReservation(ctx context.Context, record reservation.Reservation, from reservation.ReservationStatus) error {
	return updateReservation(ctx, store.tx, record, from)
}

func (store *TxStore) RecordTransfer(ctx context.Context, record reservation.TransferRecord) error {
	return insertTransferRecord(ctx, store.tx, record)
}

func (store *TxStore) GetTransferRecord(ctx context.Context, eventKey string) (reservation.TransferRecord, error) {
	return selectTransferRecord(ctx, store.tx, eventKey)
}

func insertConfiguration(ctx context.Context, db querier, configuration reservation.Configuration) error {
	_, err := db.Exec(ctx, sqlInsertConfiguration, configurationRowID, configuration.Owner.String(), configuration.RewardAsset.String())
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectConfiguration, errorCodeDuplicate, reservation.ErrAlreadyInitialized)
	}
	if err != nil {
		return wrapStoreError(errorSubjectConfiguration, errorCodeInsert, err)
	}
	return nil
}

func selectConfiguration(ctx context.Context, db querier) (reservation.Configuration, error) {
	var ownerValue, rewardAssetValue string
	err := db.QueryRow(ctx, sqlSelectConfiguration, configurationRowID).Scan(&ownerValue, &rewardAssetValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeGet, reservation.ErrNotInitialized)
		}
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeGet, err)
	}
	owner, err := reservation.NewPrincipal(ownerValue)
	if err != nil {
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeInvalid, err)
	}
	rewardAsset, err := reservation.NewAssetID(rewardAssetValue)
	if err != nil {
		return reservation.Configuration{}, wrapStoreError(errorSubjectConfiguration, errorCodeInvalid, err)
	}
	return reservation.Configuration{Owner: owner, RewardAsset: rewardAsset}, nil
}

func allocateReservationID(ctx context.Context, db querier) (reservation.ReservationID, error) {
	var allocated int64
	err := db.QueryRow(ctx, sqlAllocateReservationID, counterNameReservations).Scan(&allocated)
	if err != nil {
		return 0, wrapStoreError(errorSubjectCounter, errorCodeAllocate, err)
	}
	return reservation.ReservationID(allocated), nil
}

func insertReservation(ctx context.Context, db querier, record reservation.Reservation) error {
	flat := record.Record()
	_, err := db.Exec(ctx, sqlInsertReservation,
		int64(flat.ID.Uint64()),
		flat.Business,
		flat.Customer,
		flat.ScheduledUnixUTC,
		flat.PartySize,
		flat.PaymentAmount,
		flat.PaymentAsset,
		flat.Status,
		flat.RewardIssued,
		flat.MetadataJSON,
		flat.PaymentTransferID,
		flat.RewardTransferID,
	)
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectReservation, errorCodeDuplicate, reservation.ErrInvalidState)
	}
	if err != nil {
		return wrapStoreError(errorSubjectReservation, errorCodeCreate, err)
	}
	return nil
}

func selectReservation(ctx context.Context, db querier, reservationID reservation.ReservationID, lock bool) (reservation.Reservation, error) {
	query := sqlSelectReservation
	if lock {
		query += sqlLockSuffix
	}
	var (
		record        reservation.Record
		reservationPK int64
	)
	err := db.QueryRow(ctx, query, int64(reservationID.Uint64())).Scan(
		&reservationPK,
		&record.Business,
		&record.Customer,
		&record.ScheduledUnixUTC,
		&record.PartySize,
		&record.PaymentAmount,
		&record.PaymentAsset,
		&record.Status,
		&record.RewardIssued,
		&record.MetadataJSON,
		&record.PaymentTransferID,
		&record.RewardTransferID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, reservation.ErrNotFound)
		}
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeGet, err)
	}
	record.ID = reservation.ReservationID(reservationPK)
	restored, err := reservation.RestoreReservation(record)
	if err != nil {
		return reservation.Reservation{}, wrapStoreError(errorSubjectReservation, errorCodeInvalid, err)
	}
	return restored, nil
}

func updateReservation(ctx context.Context, db querier, record reservation.Reservation, from reservation.ReservationStatus) error {
	flat := record.Record()
	tag, err := db.Exec(ctx, sqlUpdateReservation,
		int64(flat.ID.Uint64()),
		from.String(),
		flat.Customer,
		flat.Status,
		flat.RewardIssued,
		flat.PaymentTransferID,
		flat.RewardTransferID,
		flat.MetadataJSON,
	)
	if err != nil {
		return wrapStoreError(errorSubjectReservation, errorCodeUpdate, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectReservation, errorCodeUpdate, reservation.ErrInvalidState)
	}
	return nil
}

func insertTransferRecord(ctx context.Context, db querier, record reservation.TransferRecord) error {
	_, err := db.Exec(ctx, sqlInsertTransferRecord,
		record.EventKey,
		string(record.Kind),
		int64(record.ReservationID.Uint64()),
		record.Asset.String(),
		record.From.String(),
		record.To.String(),
		record.Amount.Int64(),
		record.TransferID,
	)
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectTransfer, errorCodeDuplicate, reservation.ErrTransferAlreadyRecorded)
	}
	if err != nil {
		return wrapStoreError(errorSubjectTransfer, errorCodeInsert, err)
	}
	return nil
}

func selectTransferRecord(ctx context.Context, db querier, eventKey string) (reservation.TransferRecord, error) {
	var (
		storedKey     string
		kind          string
		reservationPK int64
		assetValue    string
		fromValue     string
		toValue       string
		amountValue   int64
		transferID    string
	)
	err := db.QueryRow(ctx, sqlSelectTransferRecord, eventKey).Scan(
		&storedKey, &kind, &reservationPK, &assetValue, &fromValue, &toValue, &amountValue, &transferID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeGet, reservation.ErrTransferNotRecorded)
		}
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeGet, err)
	}
	assetID, err := reservation.NewAssetID(assetValue)
	if err != nil {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeInvalid, err)
	}
	from, err := reservation.NewPrincipal(fromValue)
	if err != nil {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeInvalid, err)
	}
	to, err := reservation.NewPrincipal(toValue)
	if err != nil {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeInvalid, err)
	}
	amount, err := reservation.NewAmount(amountValue)
	if err != nil {
		return reservation.TransferRecord{}, wrapStoreError(errorSubjectTransfer, errorCodeInvalid, err)
	}
	return reservation.TransferRecord{
		EventKey:      storedKey,
		Kind:          reservation.TransferKind(kind),
		ReservationID: reservation.ReservationID(reservationPK),
		Asset:         assetID,
		From:          from,
		To:            to,
		Amount:        amount,
		TransferID:    transferID,
	}, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return reservation.WrapError(errorOperationStore, subject, code, err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	return false
}
