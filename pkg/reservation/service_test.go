package reservation

import (
	"context"
	"errors"
	"testing"
)

type serviceFixture struct {
	store       *stubStore
	mover       *recordingMover
	authorized  allowList
	service     *Service
	owner       Principal
	business    Principal
	customer    Principal
	asset       AssetID
	rewardAsset AssetID
}

func newServiceFixture(test *testing.T, options ...ServiceOption) *serviceFixture {
	test.Helper()
	fixture := &serviceFixture{
		store:       newStubStore(test),
		mover:       &recordingMover{},
		authorized:  allowList{"owner": true, "business": true, "customer": true},
		owner:       mustPrincipal(test, "owner"),
		business:    mustPrincipal(test, "business"),
		customer:    mustPrincipal(test, "customer"),
		asset:       mustAssetID(test, "usdc"),
		rewardAsset: mustAssetID(test, "loyalty"),
	}
	fixture.service = mustNewService(test, fixture.store, fixture.authorized, fixture.mover, options...)
	return fixture
}

func (fixture *serviceFixture) initialize(test *testing.T) {
	test.Helper()
	if err := fixture.service.Initialize(context.Background(), fixture.owner, fixture.rewardAsset); err != nil {
		test.Fatalf("initialize: %v", err)
	}
}

func (fixture *serviceFixture) create(test *testing.T, paymentAmount int64) ReservationID {
	test.Helper()
	reservationID, err := fixture.service.CreateReservation(context.Background(), fixture.business, 1000, mustPartySize(test, 2), mustAmount(test, paymentAmount), fixture.asset, mustMetadata(test, `{"note":"window seat"}`))
	if err != nil {
		test.Fatalf("create reservation: %v", err)
	}
	return reservationID
}

func (fixture *serviceFixture) confirmed(test *testing.T, paymentAmount int64) ReservationID {
	test.Helper()
	reservationID := fixture.create(test, paymentAmount)
	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err != nil {
		test.Fatalf("confirm reservation: %v", err)
	}
	return reservationID
}

func TestNewServiceRejectsMissingDependencies(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	authorizer := allowList{}
	mover := &recordingMover{}
	clock := func() int64 { return 0 }
	testCases := []struct {
		name    string
		factory func() (*Service, error)
	}{
		{name: "store", factory: func() (*Service, error) { return NewService(nil, authorizer, mover, clock) }},
		{name: "authorizer", factory: func() (*Service, error) { return NewService(store, nil, mover, clock) }},
		{name: "mover", factory: func() (*Service, error) { return NewService(store, authorizer, nil, clock) }},
		{name: "clock", factory: func() (*Service, error) { return NewService(store, authorizer, mover, nil) }},
		{name: "reward policy", factory: func() (*Service, error) {
			return NewService(store, authorizer, mover, clock, WithRewardPolicy(RewardPolicy{Units: 0, Decimals: 7}))
		}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			if _, err := testCase.factory(); !errors.Is(err, ErrInvalidServiceConfig) {
				test.Fatalf("expected ErrInvalidServiceConfig, got %v", err)
			}
		})
	}
}

func TestReservationLifecycleScenario(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	fixture.initialize(test)
	ctx := context.Background()

	reservationID := fixture.create(test, 500)
	if reservationID != 0 {
		test.Fatalf("expected first id 0, got %s", reservationID)
	}
	created := fixture.store.mustReservation(test, reservationID)
	if created.Status() != ReservationStatusPending || created.RewardIssued() {
		test.Fatalf("unexpected created reservation %+v", created.Record())
	}
	if _, ok := created.Customer(); ok {
		test.Fatalf("pending reservation must not have a customer")
	}

	if err := fixture.service.ConfirmReservation(ctx, reservationID, fixture.customer); err != nil {
		test.Fatalf("confirm: %v", err)
	}
	if fixture.mover.count() != 1 {
		test.Fatalf("expected payment transfer, got %d transfers", fixture.mover.count())
	}
	payment := fixture.mover.transfers[0]
	if payment.Kind != TransferKindPayment || payment.From != fixture.customer || payment.To != fixture.business || payment.Amount != 500 || payment.Asset != fixture.asset {
		test.Fatalf("unexpected payment transfer %+v", payment)
	}
	confirmed := fixture.store.mustReservation(test, reservationID)
	if confirmed.Status() != ReservationStatusConfirmed {
		test.Fatalf("expected confirmed, got %s", confirmed.Status())
	}
	if customer, ok := confirmed.Customer(); !ok || customer != fixture.customer {
		test.Fatalf("expected customer assigned, got %v", customer)
	}
	if confirmed.PaymentTransferID() == "" {
		test.Fatalf("expected payment transfer id to be stored")
	}

	if err := fixture.service.ResolveReservation(ctx, reservationID, ReservationStatusCompleted); err != nil {
		test.Fatalf("resolve: %v", err)
	}
	if fixture.mover.count() != 2 {
		test.Fatalf("expected reward transfer, got %d transfers", fixture.mover.count())
	}
	reward := fixture.mover.transfers[1]
	if reward.Kind != TransferKindReward || reward.From != fixture.owner || reward.To != fixture.customer || reward.Asset != fixture.rewardAsset {
		test.Fatalf("unexpected reward transfer %+v", reward)
	}
	if reward.Amount != 1_000_000_000 {
		test.Fatalf("expected reward of 100 * 10^7, got %d", reward.Amount)
	}
	completed := fixture.store.mustReservation(test, reservationID)
	if completed.Status() != ReservationStatusCompleted || !completed.RewardIssued() {
		test.Fatalf("expected completed with reward, got %+v", completed.Record())
	}
	if completed.RewardTransferID() == "" {
		test.Fatalf("expected reward transfer id to be stored")
	}

	err := fixture.service.ResolveReservation(ctx, reservationID, ReservationStatusCompleted)
	if !errors.Is(err, ErrInvalidState) {
		test.Fatalf("expected ErrInvalidState on second resolve, got %v", err)
	}
	if fixture.mover.count() != 2 {
		test.Fatalf("reward must be paid once, got %d transfers", fixture.mover.count())
	}
}

func TestCreateReservationAllocatesSequentialIDs(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	for expected := ReservationID(0); expected < 5; expected++ {
		if got := fixture.create(test, 10); got != expected {
			test.Fatalf("expected id %s, got %s", expected, got)
		}
	}
}

func TestCreateReservationFailureDoesNotConsumeID(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	stranger := mustPrincipal(test, "stranger")
	_, err := fixture.service.CreateReservation(context.Background(), stranger, 1000, mustPartySize(test, 2), 10, fixture.asset, MetadataJSON{})
	if !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	_, err = fixture.service.CreateReservation(context.Background(), fixture.business, -5, mustPartySize(test, 2), 10, fixture.asset, MetadataJSON{})
	if !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for negative time, got %v", err)
	}
	_, err = fixture.service.CreateReservation(context.Background(), fixture.business, 1000, 0, 10, fixture.asset, MetadataJSON{})
	if !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for empty party, got %v", err)
	}
	if got := fixture.create(test, 10); got != 0 {
		test.Fatalf("expected id 0 after failed creations, got %s", got)
	}
}

func TestCreateReservationDefaultsScheduledTimeToClock(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID, err := fixture.service.CreateReservation(context.Background(), fixture.business, 0, mustPartySize(test, 4), 0, fixture.asset, MetadataJSON{})
	if err != nil {
		test.Fatalf("create: %v", err)
	}
	reservation := fixture.store.mustReservation(test, reservationID)
	if reservation.ScheduledUnixUTC() != 4242 {
		test.Fatalf("expected clock time 4242, got %d", reservation.ScheduledUnixUTC())
	}
	if reservation.Metadata().String() != "{}" {
		test.Fatalf("expected empty metadata object, got %s", reservation.Metadata())
	}
}

func TestConfirmReservationRejectsNonPendingAndUnknown(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	fixture.initialize(test)
	ctx := context.Background()

	confirmedID := fixture.confirmed(test, 100)
	completedID := fixture.confirmed(test, 100)
	if err := fixture.service.ResolveReservation(ctx, completedID, ReservationStatusCompleted); err != nil {
		test.Fatalf("complete: %v", err)
	}
	noShowID := fixture.confirmed(test, 100)
	if err := fixture.service.ResolveReservation(ctx, noShowID, ReservationStatusNoShow); err != nil {
		test.Fatalf("no show: %v", err)
	}
	transfersBefore := fixture.mover.count()

	testCases := []struct {
		name          string
		reservationID ReservationID
		expected      error
	}{
		{name: "confirmed", reservationID: confirmedID, expected: ErrInvalidState},
		{name: "completed", reservationID: completedID, expected: ErrInvalidState},
		{name: "no show", reservationID: noShowID, expected: ErrInvalidState},
		{name: "unknown", reservationID: 99, expected: ErrNotFound},
	}
	for _, testCase := range testCases {
		var before Reservation
		if testCase.expected != ErrNotFound {
			before = fixture.store.mustReservation(test, testCase.reservationID)
		}
		err := fixture.service.ConfirmReservation(ctx, testCase.reservationID, fixture.customer)
		if !errors.Is(err, testCase.expected) {
			test.Fatalf("%s: expected %v, got %v", testCase.name, testCase.expected, err)
		}
		if testCase.expected != ErrNotFound {
			after := fixture.store.mustReservation(test, testCase.reservationID)
			if after != before {
				test.Fatalf("%s: reservation changed from %+v to %+v", testCase.name, before.Record(), after.Record())
			}
		}
	}
	if fixture.mover.count() != transfersBefore {
		test.Fatalf("rejected confirmations must not move value")
	}
}

func TestConfirmReservationTransferFailureKeepsPendingAndAllowsRetry(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 500)
	assetFailure := errors.New("insufficient balance")
	fixture.mover.failWith = assetFailure

	err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer)
	if !errors.Is(err, ErrTransferFailed) || !errors.Is(err, assetFailure) {
		test.Fatalf("expected transfer failure, got %v", err)
	}
	var transferError *TransferError
	if !errors.As(err, &transferError) || transferError.Transfer.Amount != 500 {
		test.Fatalf("expected TransferError carrying the transfer, got %v", err)
	}
	pending := fixture.store.mustReservation(test, reservationID)
	if pending.Status() != ReservationStatusPending {
		test.Fatalf("expected pending after failed transfer, got %s", pending.Status())
	}
	if _, ok := pending.Customer(); ok {
		test.Fatalf("customer must not be assigned after failed transfer")
	}

	fixture.mover.failWith = nil
	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err != nil {
		test.Fatalf("retry confirm: %v", err)
	}
	if fixture.store.mustReservation(test, reservationID).Status() != ReservationStatusConfirmed {
		test.Fatalf("expected confirmed after retry")
	}
}

func TestConfirmReservationRollsBackWhenCommitFails(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 500)
	fixture.store.updateErr = errors.New("disk full")

	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err == nil {
		test.Fatalf("expected commit failure")
	}
	if fixture.store.mustReservation(test, reservationID).Status() != ReservationStatusPending {
		test.Fatalf("expected pending after failed commit")
	}
}

func TestConfirmReservationSkipsTransferForZeroPayment(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 0)
	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err != nil {
		test.Fatalf("confirm: %v", err)
	}
	if fixture.mover.count() != 0 {
		test.Fatalf("expected no transfer for free reservation")
	}
	confirmed := fixture.store.mustReservation(test, reservationID)
	if confirmed.Status() != ReservationStatusConfirmed || confirmed.PaymentTransferID() != "" {
		test.Fatalf("unexpected confirmed reservation %+v", confirmed.Record())
	}
}

func TestConfirmReservationRequiresCustomerAuthorization(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 500)
	impostor := mustPrincipal(test, "impostor")

	err := fixture.service.ConfirmReservation(context.Background(), reservationID, impostor)
	if !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	err = fixture.service.ConfirmReservation(context.Background(), 77, impostor)
	if !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("authorization is checked before lookup, got %v", err)
	}
	if fixture.mover.count() != 0 {
		test.Fatalf("unauthorized confirmation must not move value")
	}
}

func TestConfirmRejectsDifferentAssignedCustomer(test *testing.T) {
	test.Parallel()
	reservation := Reservation{
		id:            1,
		business:      mustPrincipal(test, "business"),
		customer:      mustPrincipal(test, "first"),
		partySize:     2,
		paymentAsset:  mustAssetID(test, "usdc"),
		paymentAmount: 10,
		status:        ReservationStatusPending,
	}
	if _, err := reservation.confirm(mustPrincipal(test, "second")); !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	confirmed, err := reservation.confirm(mustPrincipal(test, "first"))
	if err != nil {
		test.Fatalf("confirm by assigned customer: %v", err)
	}
	if confirmed.Status() != ReservationStatusConfirmed {
		test.Fatalf("expected confirmed, got %s", confirmed.Status())
	}
}

func TestResolveReservationNoShowKeepsPayment(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.confirmed(test, 500)

	if err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusNoShow); err != nil {
		test.Fatalf("resolve no show: %v", err)
	}
	resolved := fixture.store.mustReservation(test, reservationID)
	if resolved.Status() != ReservationStatusNoShow || resolved.RewardIssued() {
		test.Fatalf("unexpected no show reservation %+v", resolved.Record())
	}
	if fixture.mover.count() != 1 {
		test.Fatalf("no show must not move value beyond the payment, got %d transfers", fixture.mover.count())
	}
	err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted)
	if !errors.Is(err, ErrInvalidState) {
		test.Fatalf("expected ErrInvalidState after no show, got %v", err)
	}
}

func TestResolveReservationRejectsUnreachableOutcomes(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.confirmed(test, 500)

	for _, outcome := range []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled} {
		err := fixture.service.ResolveReservation(context.Background(), reservationID, outcome)
		if !errors.Is(err, ErrInvalidTransition) {
			test.Fatalf("outcome %s: expected ErrInvalidTransition, got %v", outcome, err)
		}
	}
	if err := fixture.service.ResolveReservation(context.Background(), reservationID, statusUnknown); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for unknown outcome, got %v", err)
	}
	if fixture.store.mustReservation(test, reservationID).Status() != ReservationStatusConfirmed {
		test.Fatalf("rejected outcomes must not change the reservation")
	}
}

func TestResolveReservationErrorOrdering(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	pendingID := fixture.create(test, 500)
	delete(fixture.authorized, "business")

	if err := fixture.service.ResolveReservation(context.Background(), 42, ReservationStatusNoShow); !errors.Is(err, ErrNotFound) {
		test.Fatalf("expected ErrNotFound before authorization, got %v", err)
	}
	if err := fixture.service.ResolveReservation(context.Background(), pendingID, ReservationStatusNoShow); !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized before state check, got %v", err)
	}
	fixture.authorized["business"] = true
	if err := fixture.service.ResolveReservation(context.Background(), pendingID, ReservationStatusCompleted); !errors.Is(err, ErrInvalidState) {
		test.Fatalf("expected ErrInvalidState for pending reservation, got %v", err)
	}
}

func TestResolveCompletedRequiresConfigurationAndOwner(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.confirmed(test, 500)

	err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted)
	if !errors.Is(err, ErrNotInitialized) {
		test.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	fixture.initialize(test)
	delete(fixture.authorized, "owner")
	err = fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted)
	if !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized without owner, got %v", err)
	}
	unchanged := fixture.store.mustReservation(test, reservationID)
	if unchanged.Status() != ReservationStatusConfirmed || unchanged.RewardIssued() {
		test.Fatalf("expected confirmed without reward, got %+v", unchanged.Record())
	}
	if fixture.mover.count() != 1 {
		test.Fatalf("expected only the payment transfer, got %d", fixture.mover.count())
	}

	fixture.authorized["owner"] = true
	if err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted); err != nil {
		test.Fatalf("resolve with owner: %v", err)
	}
}

func TestResolveCompletedRewardFailureKeepsConfirmed(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	fixture.initialize(test)
	reservationID := fixture.confirmed(test, 500)
	fixture.mover.failWith = errors.New("owner balance too low")

	err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted)
	if !errors.Is(err, ErrTransferFailed) {
		test.Fatalf("expected ErrTransferFailed, got %v", err)
	}
	unchanged := fixture.store.mustReservation(test, reservationID)
	if unchanged.Status() != ReservationStatusConfirmed || unchanged.RewardIssued() {
		test.Fatalf("expected confirmed without reward, got %+v", unchanged.Record())
	}

	fixture.mover.failWith = nil
	if err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted); err != nil {
		test.Fatalf("retry resolve: %v", err)
	}
	if !fixture.store.mustReservation(test, reservationID).RewardIssued() {
		test.Fatalf("expected reward issued after retry")
	}
}

func TestResolveCompletedIssuesRewardAtMostOnce(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	fixture.initialize(test)
	reservationID := fixture.confirmed(test, 500)

	successes := 0
	for attempt := 0; attempt < 5; attempt++ {
		err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted)
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrInvalidState) {
			test.Fatalf("attempt %d: expected ErrInvalidState, got %v", attempt, err)
		}
	}
	if successes != 1 {
		test.Fatalf("expected exactly one successful resolve, got %d", successes)
	}
	rewards := 0
	for _, transfer := range fixture.mover.transfers {
		if transfer.Kind == TransferKindReward {
			rewards++
		}
	}
	if rewards != 1 {
		test.Fatalf("expected one reward transfer, got %d", rewards)
	}
}

func TestResolveCompletedUsesConfiguredRewardPolicy(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test, WithRewardPolicy(RewardPolicy{Units: 5, Decimals: 2}))
	fixture.initialize(test)
	if fixture.service.RewardAmount() != 500 {
		test.Fatalf("expected reward amount 500, got %d", fixture.service.RewardAmount())
	}
	reservationID := fixture.confirmed(test, 0)
	if err := fixture.service.ResolveReservation(context.Background(), reservationID, ReservationStatusCompleted); err != nil {
		test.Fatalf("resolve: %v", err)
	}
	if fixture.mover.count() != 1 || fixture.mover.transfers[0].Amount != 500 {
		test.Fatalf("unexpected reward transfers %+v", fixture.mover.transfers)
	}
}

func TestInitializeSucceedsOnce(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	ctx := context.Background()
	if _, err := fixture.service.GetConfiguration(ctx); !errors.Is(err, ErrNotInitialized) {
		test.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	fixture.initialize(test)

	err := fixture.service.Initialize(ctx, mustPrincipal(test, "other-owner"), mustAssetID(test, "other-asset"))
	if !errors.Is(err, ErrAlreadyInitialized) {
		test.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	configuration, err := fixture.service.GetConfiguration(ctx)
	if err != nil {
		test.Fatalf("get configuration: %v", err)
	}
	if configuration.Owner != fixture.owner || configuration.RewardAsset != fixture.rewardAsset {
		test.Fatalf("configuration changed: %+v", configuration)
	}
	if err := fixture.service.Initialize(ctx, Principal{}, fixture.rewardAsset); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for empty owner, got %v", err)
	}
}

func TestGetReservationReportsAbsence(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	_, found, err := fixture.service.GetReservation(context.Background(), 3)
	if err != nil || found {
		test.Fatalf("expected absent without error, got found=%v err=%v", found, err)
	}
	reservationID := fixture.create(test, 25)
	reservation, found, err := fixture.service.GetReservation(context.Background(), reservationID)
	if err != nil || !found {
		test.Fatalf("expected reservation, got found=%v err=%v", found, err)
	}
	if reservation.PaymentAmount() != 25 || reservation.PartySize() != 2 || reservation.Metadata().String() != `{"note":"window seat"}` {
		test.Fatalf("unexpected reservation %+v", reservation.Record())
	}
}

func TestServiceWrapsPlainMoverErrors(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 50)
	plain := errors.New("network down")
	fixture.mover.failWith = plain

	err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer)
	var transferError *TransferError
	if !errors.As(err, &transferError) {
		test.Fatalf("expected TransferError, got %v", err)
	}
	if transferError.Transfer.Kind != TransferKindPayment || transferError.Transfer.ReservationID != reservationID {
		test.Fatalf("unexpected transfer in error %+v", transferError.Transfer)
	}
}

func TestConfirmAndRewardStoreTransferRecords(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	fixture.initialize(test)
	ctx := context.Background()
	reservationID := fixture.confirmed(test, 500)
	if err := fixture.service.ResolveReservation(ctx, reservationID, ReservationStatusCompleted); err != nil {
		test.Fatalf("resolve: %v", err)
	}
	stored := fixture.store.mustReservation(test, reservationID)

	payment, err := fixture.service.GetTransferRecord(ctx, TransferKindPayment, reservationID)
	if err != nil {
		test.Fatalf("payment record: %v", err)
	}
	if payment.TransferID != stored.PaymentTransferID() || payment.From != fixture.customer || payment.To != fixture.business || payment.Amount != 500 {
		test.Fatalf("unexpected payment record %+v", payment)
	}
	reward, err := fixture.service.GetTransferRecord(ctx, TransferKindReward, reservationID)
	if err != nil {
		test.Fatalf("reward record: %v", err)
	}
	if reward.TransferID != stored.RewardTransferID() || reward.Asset != fixture.rewardAsset || reward.To != fixture.customer {
		test.Fatalf("unexpected reward record %+v", reward)
	}
}

func TestConfirmRefusesEventWithStoredReceipt(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 500)
	fixture.store.putTransfer(TransferRecord{
		EventKey:      Transfer{Kind: TransferKindPayment, ReservationID: reservationID}.EventKey(),
		Kind:          TransferKindPayment,
		ReservationID: reservationID,
		TransferID:    "earlier",
	})

	err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer)
	if !errors.Is(err, ErrInvalidState) {
		test.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if fixture.mover.count() != 0 {
		test.Fatalf("expected no transfer, got %d", fixture.mover.count())
	}
	if fixture.store.mustReservation(test, reservationID).Status() != ReservationStatusPending {
		test.Fatalf("reservation must stay pending")
	}
}

func TestFailedCommitDiscardsTransferRecord(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	reservationID := fixture.create(test, 500)
	fixture.store.updateErr = errors.New("disk full")
	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err == nil {
		test.Fatalf("expected commit failure")
	}
	if _, err := fixture.service.GetTransferRecord(context.Background(), TransferKindPayment, reservationID); !errors.Is(err, ErrTransferNotRecorded) {
		test.Fatalf("expected no stored receipt, got %v", err)
	}
}

func TestAssetCatalogRejectsUnknownAssets(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test, WithAssetCatalog(knownAssets{"usdc": true}))
	ctx := context.Background()

	err := fixture.service.Initialize(ctx, fixture.owner, fixture.rewardAsset)
	if !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected unknown reward asset to be rejected, got %v", err)
	}
	if _, err := fixture.service.GetConfiguration(ctx); !errors.Is(err, ErrNotInitialized) {
		test.Fatalf("expected configuration to stay unset, got %v", err)
	}

	_, err = fixture.service.CreateReservation(ctx, fixture.business, 1000, mustPartySize(test, 2), 500, mustAssetID(test, "doge"), MetadataJSON{})
	if !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected unknown payment asset to be rejected, got %v", err)
	}
	if reservationID := fixture.create(test, 500); reservationID != 0 {
		test.Fatalf("rejected creation must not consume an id, got %s", reservationID)
	}
}

func TestAssetCatalogChecksAuthorizationFirst(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test, WithAssetCatalog(knownAssets{}))
	stranger := mustPrincipal(test, "stranger")
	_, err := fixture.service.CreateReservation(context.Background(), stranger, 1000, mustPartySize(test, 2), 500, fixture.asset, MetadataJSON{})
	if !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateReservationMetadata(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	ctx := context.Background()
	reservationID := fixture.confirmed(test, 500)
	before := fixture.store.mustReservation(test, reservationID)

	notes := mustMetadata(test, `{"note":"allergic to peanuts"}`)
	if err := fixture.service.UpdateReservationMetadata(ctx, reservationID, notes); err != nil {
		test.Fatalf("update metadata: %v", err)
	}
	after := fixture.store.mustReservation(test, reservationID)
	if after.Metadata().String() != notes.String() {
		test.Fatalf("expected metadata %s, got %s", notes, after.Metadata())
	}
	beforeRecord := before.Record()
	afterRecord := after.Record()
	beforeRecord.MetadataJSON = ""
	afterRecord.MetadataJSON = ""
	if beforeRecord != afterRecord {
		test.Fatalf("lifecycle fields changed: %+v -> %+v", beforeRecord, afterRecord)
	}
	if fixture.mover.count() != 1 {
		test.Fatalf("metadata update must not move value, got %d transfers", fixture.mover.count())
	}
}

func TestUpdateReservationMetadataErrors(test *testing.T) {
	test.Parallel()
	fixture := newServiceFixture(test)
	ctx := context.Background()
	notes := mustMetadata(test, `{"note":"late"}`)

	if err := fixture.service.UpdateReservationMetadata(ctx, 9, notes); !errors.Is(err, ErrNotFound) {
		test.Fatalf("expected ErrNotFound, got %v", err)
	}
	reservationID := fixture.create(test, 500)
	delete(fixture.authorized, "business")
	if err := fixture.service.UpdateReservationMetadata(ctx, reservationID, notes); !errors.Is(err, ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if fixture.store.mustReservation(test, reservationID).Metadata().String() != `{"note":"window seat"}` {
		test.Fatalf("metadata must be unchanged")
	}
}
