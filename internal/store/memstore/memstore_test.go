package memstore_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/MarkoPoloResearchLab/reservel/internal/store/memstore"
	"github.com/MarkoPoloResearchLab/reservel/pkg/escrow"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
)

func mustPrincipal(test *testing.T, raw string) reservation.Principal {
	test.Helper()
	principal, err := reservation.NewPrincipal(raw)
	if err != nil {
		test.Fatalf("principal: %v", err)
	}
	return principal
}

func mustAssetID(test *testing.T, raw string) reservation.AssetID {
	test.Helper()
	assetID, err := reservation.NewAssetID(raw)
	if err != nil {
		test.Fatalf("asset id: %v", err)
	}
	return assetID
}

func newPendingReservation(test *testing.T, reservationID reservation.ReservationID) reservation.Reservation {
	test.Helper()
	record, err := reservation.NewReservation(reservationID, mustPrincipal(test, "business"), 1000, 2, 500, mustAssetID(test, "usdc"), reservation.MetadataJSON{})
	if err != nil {
		test.Fatalf("new reservation: %v", err)
	}
	return record
}

func TestWithTxDiscardsWritesOnError(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	ctx := context.Background()
	rollback := errors.New("rollback")

	err := store.WithTx(ctx, func(ctx context.Context, txStore reservation.Store) error {
		reservationID, err := txStore.AllocateReservationID(ctx)
		if err != nil {
			return err
		}
		if err := txStore.CreateReservation(ctx, newPendingReservation(test, reservationID)); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		test.Fatalf("expected rollback error, got %v", err)
	}
	if _, err := store.GetReservation(ctx, 0); !errors.Is(err, reservation.ErrNotFound) {
		test.Fatalf("expected no reservation after rollback, got %v", err)
	}
	reservationID, err := store.AllocateReservationID(ctx)
	if err != nil {
		test.Fatalf("allocate: %v", err)
	}
	if reservationID != 0 {
		test.Fatalf("expected counter untouched by rollback, got %s", reservationID)
	}
}

func TestUpdateReservationGuardsStatus(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	ctx := context.Background()
	pending := newPendingReservation(test, 0)
	if err := store.CreateReservation(ctx, pending); err != nil {
		test.Fatalf("create: %v", err)
	}
	if err := store.CreateReservation(ctx, pending); !errors.Is(err, reservation.ErrInvalidState) {
		test.Fatalf("expected duplicate create to fail, got %v", err)
	}
	if err := store.UpdateReservation(ctx, pending, reservation.ReservationStatusConfirmed); !errors.Is(err, reservation.ErrInvalidState) {
		test.Fatalf("expected stale status to fail, got %v", err)
	}
	if err := store.UpdateReservation(ctx, newPendingReservation(test, 8), reservation.ReservationStatusPending); !errors.Is(err, reservation.ErrNotFound) {
		test.Fatalf("expected unknown reservation to fail, got %v", err)
	}
}

func TestConfigurationIsWrittenOnce(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	ctx := context.Background()
	if _, err := store.GetConfiguration(ctx); !errors.Is(err, reservation.ErrNotInitialized) {
		test.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	configuration, err := reservation.NewConfiguration(mustPrincipal(test, "owner"), mustAssetID(test, "loyalty"))
	if err != nil {
		test.Fatalf("configuration: %v", err)
	}
	if err := store.InsertConfiguration(ctx, configuration); err != nil {
		test.Fatalf("insert: %v", err)
	}
	if err := store.InsertConfiguration(ctx, configuration); !errors.Is(err, reservation.ErrAlreadyInitialized) {
		test.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	stored, err := store.GetConfiguration(ctx)
	if err != nil || stored != configuration {
		test.Fatalf("unexpected configuration %+v (%v)", stored, err)
	}
}

func TestServiceOverMemoryStoreAllocatesUniqueIDsConcurrently(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	authorizer := reservation.AuthorizerFunc(func(context.Context, reservation.Principal) error { return nil })
	coordinator, err := escrow.NewCoordinator(escrow.NewRegistry())
	if err != nil {
		test.Fatalf("coordinator: %v", err)
	}
	service, err := reservation.NewService(store, authorizer, coordinator, func() int64 { return 1 })
	if err != nil {
		test.Fatalf("service: %v", err)
	}

	const workers = 16
	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		ids       []int
	)
	for worker := 0; worker < workers; worker++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			reservationID, createErr := service.CreateReservation(context.Background(), mustPrincipal(test, "business"), 0, 2, 100, mustAssetID(test, "usdc"), reservation.MetadataJSON{})
			if createErr != nil {
				test.Errorf("create: %v", createErr)
				return
			}
			mutex.Lock()
			ids = append(ids, int(reservationID))
			mutex.Unlock()
		}()
	}
	waitGroup.Wait()
	sort.Ints(ids)
	if len(ids) != workers {
		test.Fatalf("expected %d ids, got %d", workers, len(ids))
	}
	for index, reservationID := range ids {
		if reservationID != index {
			test.Fatalf("expected dense ids, got %v", ids)
		}
	}
}

func TestServiceOverMemoryStoreRunsScenario(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	ctx := context.Background()
	owner := mustPrincipal(test, "owner")
	business := mustPrincipal(test, "business")
	customer := mustPrincipal(test, "customer")
	paymentAsset := mustAssetID(test, "usdc")
	rewardAsset := mustAssetID(test, "loyalty")

	var moved []reservation.Amount
	recordTransfer := escrow.FuncTransferer(func(_ context.Context, _ reservation.Principal, _ reservation.Principal, amount reservation.Amount) (string, error) {
		moved = append(moved, amount)
		return "tx", nil
	})
	registry := escrow.NewRegistry()
	if err := registry.Register(paymentAsset, recordTransfer); err != nil {
		test.Fatalf("register payment asset: %v", err)
	}
	if err := registry.Register(rewardAsset, recordTransfer); err != nil {
		test.Fatalf("register reward asset: %v", err)
	}
	coordinator, err := escrow.NewCoordinator(registry)
	if err != nil {
		test.Fatalf("coordinator: %v", err)
	}
	authorizer := reservation.AuthorizerFunc(func(context.Context, reservation.Principal) error { return nil })
	service, err := reservation.NewService(store, authorizer, coordinator, func() int64 { return 1 })
	if err != nil {
		test.Fatalf("service: %v", err)
	}

	if err := service.Initialize(ctx, owner, rewardAsset); err != nil {
		test.Fatalf("initialize: %v", err)
	}
	reservationID, err := service.CreateReservation(ctx, business, 1000, 2, 500, paymentAsset, reservation.MetadataJSON{})
	if err != nil {
		test.Fatalf("create: %v", err)
	}
	if err := service.ConfirmReservation(ctx, reservationID, customer); err != nil {
		test.Fatalf("confirm: %v", err)
	}
	if err := service.ResolveReservation(ctx, reservationID, reservation.ReservationStatusCompleted); err != nil {
		test.Fatalf("resolve: %v", err)
	}
	if err := service.ResolveReservation(ctx, reservationID, reservation.ReservationStatusCompleted); !errors.Is(err, reservation.ErrInvalidState) {
		test.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if len(moved) != 2 || moved[0] != 500 || moved[1] != 1_000_000_000 {
		test.Fatalf("unexpected transfers %v", moved)
	}
	stored, found, err := service.GetReservation(ctx, reservationID)
	if err != nil || !found {
		test.Fatalf("get: found=%v err=%v", found, err)
	}
	if stored.Status() != reservation.ReservationStatusCompleted || !stored.RewardIssued() {
		test.Fatalf("unexpected stored reservation %+v", stored.Record())
	}
}

func TestTransferRecordsAreTransactional(test *testing.T) {
	test.Parallel()
	store := memstore.New()
	ctx := context.Background()
	record := reservation.TransferRecord{
		EventKey:      "payment:0",
		Kind:          reservation.TransferKindPayment,
		ReservationID: 0,
		Asset:         mustAssetID(test, "usdc"),
		From:          mustPrincipal(test, "customer"),
		To:            mustPrincipal(test, "business"),
		Amount:        500,
		TransferID:    "tx-1",
	}

	rollback := errors.New("rollback")
	err := store.WithTx(ctx, func(ctx context.Context, txStore reservation.Store) error {
		if err := txStore.RecordTransfer(ctx, record); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		test.Fatalf("expected rollback, got %v", err)
	}
	if _, err := store.GetTransferRecord(ctx, record.EventKey); !errors.Is(err, reservation.ErrTransferNotRecorded) {
		test.Fatalf("expected rolled back record to be absent, got %v", err)
	}

	if err := store.RecordTransfer(ctx, record); err != nil {
		test.Fatalf("record: %v", err)
	}
	stored, err := store.GetTransferRecord(ctx, record.EventKey)
	if err != nil || stored != record {
		test.Fatalf("unexpected stored record %+v (%v)", stored, err)
	}
	if err := store.RecordTransfer(ctx, record); !errors.Is(err, reservation.ErrTransferAlreadyRecorded) {
		test.Fatalf("expected ErrTransferAlreadyRecorded, got %v", err)
	}
}
