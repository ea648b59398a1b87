package reservation

import (
	"context"
	"errors"
	"fmt"
)

// Service contains the reservation lifecycle logic over a Store.
type Service struct {
	store        Store
	authorizer   Authorizer
	mover        ValueMover
	nowFn        func() int64
	rewardPolicy RewardPolicy
	rewardAmount Amount
	assets       AssetCatalog
	logger       OperationLogger
}

// NewService wires a Service.
func NewService(store Store, authorizer Authorizer, mover ValueMover, now func() int64, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if authorizer == nil {
		return nil, fmt.Errorf("%w: authorizer dependency is nil", ErrInvalidServiceConfig)
	}
	if mover == nil {
		return nil, fmt.Errorf("%w: value mover dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:        store,
		authorizer:   authorizer,
		mover:        mover,
		nowFn:        now,
		rewardPolicy: DefaultRewardPolicy(),
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	rewardAmount, err := service.rewardPolicy.Amount()
	if err != nil {
		return nil, err
	}
	service.rewardAmount = rewardAmount
	return service, nil
}

// RewardAmount returns the loyalty reward paid on completion, in smallest units.
func (service *Service) RewardAmount() Amount {
	return service.rewardAmount
}

// Initialize stores the owner and reward asset. It succeeds exactly once.
func (service *Service) Initialize(ctx context.Context, owner Principal, rewardAsset AssetID) error {
	operationError := func() error {
		configuration, err := NewConfiguration(owner, rewardAsset)
		if err != nil {
			return err
		}
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			_, err := transactionStore.GetConfiguration(ctx)
			if err == nil {
				return ErrAlreadyInitialized
			}
			if !errors.Is(err, ErrNotInitialized) {
				return err
			}
			if err := service.requireKnownAsset(rewardAsset); err != nil {
				return err
			}
			return transactionStore.InsertConfiguration(ctx, configuration)
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation: operationInitialize,
		Principal: owner,
		Asset:     rewardAsset,
		Error:     operationError,
	})
	return operationError
}

// CreateReservation allocates the next id and stores a pending reservation.
// A zero scheduled time is replaced with the current clock value.
func (service *Service) CreateReservation(ctx context.Context, business Principal, scheduledUnixUTC int64, partySize PartySize, paymentAmount Amount, paymentAsset AssetID, metadata MetadataJSON) (ReservationID, error) {
	var reservationID ReservationID
	operationError := func() error {
		if err := service.requireAuth(ctx, business); err != nil {
			return err
		}
		if err := service.requireKnownAsset(paymentAsset); err != nil {
			return err
		}
		if scheduledUnixUTC == 0 {
			scheduledUnixUTC = service.nowFn()
		}
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			allocatedID, err := transactionStore.AllocateReservationID(ctx)
			if err != nil {
				return err
			}
			reservation, err := NewReservation(allocatedID, business, scheduledUnixUTC, partySize, paymentAmount, paymentAsset, metadata)
			if err != nil {
				return err
			}
			if err := transactionStore.CreateReservation(ctx, reservation); err != nil {
				return err
			}
			reservationID = allocatedID
			return nil
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation:     operationCreate,
		ReservationID: reservationID,
		Principal:     business,
		Amount:        paymentAmount,
		Asset:         paymentAsset,
		Error:         operationError,
	})
	if operationError != nil {
		return 0, operationError
	}
	return reservationID, nil
}

// ConfirmReservation assigns the customer, captures the payment and moves the
// reservation to confirmed. The state is written only after the transfer succeeds.
func (service *Service) ConfirmReservation(ctx context.Context, reservationID ReservationID, customer Principal) error {
	var (
		paymentAmount Amount
		paymentAsset  AssetID
		transferIDs   []string
	)
	operationError := func() error {
		if err := service.requireAuth(ctx, customer); err != nil {
			return err
		}
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			reservation, err := transactionStore.GetReservation(ctx, reservationID)
			if err != nil {
				return err
			}
			paymentAmount = reservation.PaymentAmount()
			paymentAsset = reservation.PaymentAsset()
			confirmed, err := reservation.confirm(customer)
			if err != nil {
				return err
			}
			if paymentAmount > 0 {
				receipt, err := service.moveValue(ctx, transactionStore, Transfer{
					Kind:          TransferKindPayment,
					ReservationID: reservationID,
					Asset:         paymentAsset,
					From:          customer,
					To:            reservation.Business(),
					Amount:        paymentAmount,
				})
				if err != nil {
					return err
				}
				confirmed.paymentTransferID = receipt.TransferID
				transferIDs = append(transferIDs, receipt.TransferID)
			}
			return transactionStore.UpdateReservation(ctx, confirmed, ReservationStatusPending)
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation:     operationConfirm,
		ReservationID: reservationID,
		Principal:     customer,
		Amount:        paymentAmount,
		Asset:         paymentAsset,
		Outcome:       ReservationStatusConfirmed,
		TransferIDs:   transferIDs,
		Error:         operationError,
	})
	return operationError
}

// ResolveReservation moves a confirmed reservation to completed or no_show.
// Completion pays the loyalty reward once; it requires the owner's authorization
// in addition to the business.
func (service *Service) ResolveReservation(ctx context.Context, reservationID ReservationID, outcome ReservationStatus) error {
	var (
		business    Principal
		rewardAsset AssetID
		rewardPaid  Amount
		transferIDs []string
	)
	operationError := func() error {
		if !outcome.Valid() {
			return fmt.Errorf("%w: unknown outcome", ErrInvalidInput)
		}
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			reservation, err := transactionStore.GetReservation(ctx, reservationID)
			if err != nil {
				return err
			}
			business = reservation.Business()
			if err := service.requireAuth(ctx, business); err != nil {
				return err
			}
			resolved, err := reservation.resolve(outcome)
			if err != nil {
				return err
			}
			if outcome == ReservationStatusCompleted && !reservation.RewardIssued() {
				receipt, err := service.issueReward(ctx, transactionStore, reservation)
				if err != nil {
					return err
				}
				rewardAsset = receipt.asset
				rewardPaid = service.rewardAmount
				resolved.rewardIssued = true
				resolved.rewardTransferID = receipt.TransferID
				transferIDs = append(transferIDs, receipt.TransferID)
			}
			return transactionStore.UpdateReservation(ctx, resolved, ReservationStatusConfirmed)
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation:     operationResolve,
		ReservationID: reservationID,
		Principal:     business,
		Amount:        rewardPaid,
		Asset:         rewardAsset,
		Outcome:       outcome,
		TransferIDs:   transferIDs,
		Error:         operationError,
	})
	return operationError
}

type rewardReceipt struct {
	TransferReceipt
	asset AssetID
}

func (service *Service) issueReward(ctx context.Context, transactionStore Store, reservation Reservation) (rewardReceipt, error) {
	configuration, err := transactionStore.GetConfiguration(ctx)
	if err != nil {
		return rewardReceipt{}, err
	}
	if err := service.requireAuth(ctx, configuration.Owner); err != nil {
		return rewardReceipt{}, err
	}
	customer, ok := reservation.Customer()
	if !ok {
		return rewardReceipt{}, fmt.Errorf("%w: reservation %s has no customer", ErrInvalidState, reservation.ID())
	}
	receipt, err := service.moveValue(ctx, transactionStore, Transfer{
		Kind:          TransferKindReward,
		ReservationID: reservation.ID(),
		Asset:         configuration.RewardAsset,
		From:          configuration.Owner,
		To:            customer,
		Amount:        service.rewardAmount,
	})
	if err != nil {
		return rewardReceipt{}, err
	}
	return rewardReceipt{TransferReceipt: receipt, asset: configuration.RewardAsset}, nil
}

// UpdateReservationMetadata replaces the details of a reservation in any
// status. Only the business that created it may do so.
func (service *Service) UpdateReservationMetadata(ctx context.Context, reservationID ReservationID, metadata MetadataJSON) error {
	var business Principal
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		reservation, err := transactionStore.GetReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		business = reservation.Business()
		if err := service.requireAuth(ctx, business); err != nil {
			return err
		}
		return transactionStore.UpdateReservation(ctx, reservation.withMetadata(metadata), reservation.Status())
	})
	service.logOperation(ctx, OperationLog{
		Operation:     operationMetadata,
		ReservationID: reservationID,
		Principal:     business,
		Error:         operationError,
	})
	return operationError
}

// GetReservation returns the current record; the boolean is false when the id is unknown.
func (service *Service) GetReservation(ctx context.Context, reservationID ReservationID) (Reservation, bool, error) {
	reservation, err := service.store.GetReservation(ctx, reservationID)
	if errors.Is(err, ErrNotFound) {
		return Reservation{}, false, nil
	}
	if err != nil {
		return Reservation{}, false, err
	}
	return reservation, true, nil
}

// GetConfiguration returns the owner and reward asset.
func (service *Service) GetConfiguration(ctx context.Context) (Configuration, error) {
	return service.store.GetConfiguration(ctx)
}

// GetTransferRecord returns the receipt stored for a reservation's payment or reward.
func (service *Service) GetTransferRecord(ctx context.Context, kind TransferKind, reservationID ReservationID) (TransferRecord, error) {
	return service.store.GetTransferRecord(ctx, Transfer{Kind: kind, ReservationID: reservationID}.EventKey())
}

// moveValue refuses events that already hold a receipt, then stores the new
// receipt in the same transaction as the state change it pays for.
func (service *Service) moveValue(ctx context.Context, transactionStore Store, transfer Transfer) (TransferReceipt, error) {
	eventKey := transfer.EventKey()
	_, err := transactionStore.GetTransferRecord(ctx, eventKey)
	if err == nil {
		return TransferReceipt{}, fmt.Errorf("%w: %s already moved value", ErrInvalidState, eventKey)
	}
	if !errors.Is(err, ErrTransferNotRecorded) {
		return TransferReceipt{}, err
	}
	receipt, err := service.mover.MoveValue(ctx, transfer)
	if err != nil {
		if errors.Is(err, ErrTransferFailed) {
			return TransferReceipt{}, err
		}
		return TransferReceipt{}, NewTransferError(transfer, err)
	}
	if err := transactionStore.RecordTransfer(ctx, NewTransferRecord(transfer, receipt)); err != nil {
		return TransferReceipt{}, err
	}
	return receipt, nil
}

func (service *Service) requireKnownAsset(assetID AssetID) error {
	if service.assets == nil || assetID.IsZero() {
		return nil
	}
	if !service.assets.HasAsset(assetID) {
		return fmt.Errorf("%w: unknown asset %s", ErrInvalidInput, assetID)
	}
	return nil
}

func (service *Service) requireAuth(ctx context.Context, principal Principal) error {
	if principal.IsZero() {
		return fmt.Errorf("%w: principal is required", ErrInvalidInput)
	}
	if err := service.authorizer.RequireAuth(ctx, principal); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}
