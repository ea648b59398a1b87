package reservation

import "fmt"

// Reservation is a validated snapshot of a stored reservation.
type Reservation struct {
	id                ReservationID
	business          Principal
	customer          Principal
	scheduledUnixUTC  int64
	partySize         PartySize
	paymentAmount     Amount
	paymentAsset      AssetID
	status            ReservationStatus
	rewardIssued      bool
	metadata          MetadataJSON
	paymentTransferID string
	rewardTransferID  string
}

// Record is the flat persistence form of a Reservation. An empty Customer means unset.
type Record struct {
	ID                ReservationID
	Business          string
	Customer          string
	ScheduledUnixUTC  int64
	PartySize         int64
	PaymentAmount     int64
	PaymentAsset      string
	Status            string
	RewardIssued      bool
	MetadataJSON      string
	PaymentTransferID string
	RewardTransferID  string
}

// NewReservation builds a pending reservation with no customer.
func NewReservation(reservationID ReservationID, business Principal, scheduledUnixUTC int64, partySize PartySize, paymentAmount Amount, paymentAsset AssetID, metadata MetadataJSON) (Reservation, error) {
	reservation := Reservation{
		id:               reservationID,
		business:         business,
		scheduledUnixUTC: scheduledUnixUTC,
		partySize:        partySize,
		paymentAmount:    paymentAmount,
		paymentAsset:     paymentAsset,
		status:           ReservationStatusPending,
		metadata:         metadata,
	}
	if err := reservation.validate(); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// RestoreReservation rebuilds a reservation from storage, rejecting records that break invariants.
func RestoreReservation(record Record) (Reservation, error) {
	business, err := NewPrincipal(record.Business)
	if err != nil {
		return Reservation{}, err
	}
	var customer Principal
	if record.Customer != "" {
		customer, err = NewPrincipal(record.Customer)
		if err != nil {
			return Reservation{}, err
		}
	}
	partySize, err := NewPartySize(record.PartySize)
	if err != nil {
		return Reservation{}, err
	}
	paymentAmount, err := NewAmount(record.PaymentAmount)
	if err != nil {
		return Reservation{}, err
	}
	paymentAsset, err := NewAssetID(record.PaymentAsset)
	if err != nil {
		return Reservation{}, err
	}
	status, err := ParseReservationStatus(record.Status)
	if err != nil {
		return Reservation{}, err
	}
	metadata, err := NewMetadataJSON(record.MetadataJSON)
	if err != nil {
		return Reservation{}, err
	}
	reservation := Reservation{
		id:                record.ID,
		business:          business,
		customer:          customer,
		scheduledUnixUTC:  record.ScheduledUnixUTC,
		partySize:         partySize,
		paymentAmount:     paymentAmount,
		paymentAsset:      paymentAsset,
		status:            status,
		rewardIssued:      record.RewardIssued,
		metadata:          metadata,
		paymentTransferID: record.PaymentTransferID,
		rewardTransferID:  record.RewardTransferID,
	}
	if err := reservation.validate(); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

func (reservation Reservation) validate() error {
	if reservation.business.IsZero() {
		return fmt.Errorf("%w: business is required", ErrInvalidInput)
	}
	if reservation.scheduledUnixUTC < 0 {
		return fmt.Errorf("%w: scheduled time must not be negative", ErrInvalidInput)
	}
	if reservation.partySize == 0 {
		return fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}
	if reservation.paymentAmount < 0 {
		return fmt.Errorf("%w: payment amount must not be negative", ErrInvalidInput)
	}
	if reservation.paymentAsset.IsZero() {
		return fmt.Errorf("%w: payment asset is required", ErrInvalidInput)
	}
	if !reservation.status.Valid() {
		return fmt.Errorf("%w: reservation status %d", ErrInvalidInput, reservation.status)
	}
	if reservation.status == ReservationStatusPending && !reservation.customer.IsZero() {
		return fmt.Errorf("%w: pending reservation must not have a customer", ErrInvalidInput)
	}
	if reservation.status != ReservationStatusPending && reservation.status != ReservationStatusCancelled && reservation.customer.IsZero() {
		return fmt.Errorf("%w: %s reservation requires a customer", ErrInvalidInput, reservation.status)
	}
	if reservation.rewardIssued && reservation.status != ReservationStatusCompleted {
		return fmt.Errorf("%w: reward issued on %s reservation", ErrInvalidInput, reservation.status)
	}
	return nil
}

// ID returns the reservation identifier.
func (reservation Reservation) ID() ReservationID {
	return reservation.id
}

// Business returns the business that created the reservation.
func (reservation Reservation) Business() Principal {
	return reservation.business
}

// Customer returns the confirming customer, if any.
func (reservation Reservation) Customer() (Principal, bool) {
	return reservation.customer, !reservation.customer.IsZero()
}

// ScheduledUnixUTC returns the scheduled time.
func (reservation Reservation) ScheduledUnixUTC() int64 {
	return reservation.scheduledUnixUTC
}

// PartySize returns the number of guests.
func (reservation Reservation) PartySize() PartySize {
	return reservation.partySize
}

// PaymentAmount returns the escrowed amount.
func (reservation Reservation) PaymentAmount() Amount {
	return reservation.paymentAmount
}

// PaymentAsset returns the asset used for the payment.
func (reservation Reservation) PaymentAsset() AssetID {
	return reservation.paymentAsset
}

// Status returns the lifecycle status.
func (reservation Reservation) Status() ReservationStatus {
	return reservation.status
}

// RewardIssued reports whether the loyalty reward was paid.
func (reservation Reservation) RewardIssued() bool {
	return reservation.rewardIssued
}

// Metadata returns the business-supplied details such as notes.
func (reservation Reservation) Metadata() MetadataJSON {
	return reservation.metadata
}

// PaymentTransferID returns the receipt of the payment transfer, if any.
func (reservation Reservation) PaymentTransferID() string {
	return reservation.paymentTransferID
}

// RewardTransferID returns the receipt of the reward transfer, if any.
func (reservation Reservation) RewardTransferID() string {
	return reservation.rewardTransferID
}

// Record returns the flat persistence form.
func (reservation Reservation) Record() Record {
	return Record{
		ID:                reservation.id,
		Business:          reservation.business.String(),
		Customer:          reservation.customer.String(),
		ScheduledUnixUTC:  reservation.scheduledUnixUTC,
		PartySize:         int64(reservation.partySize),
		PaymentAmount:     reservation.paymentAmount.Int64(),
		PaymentAsset:      reservation.paymentAsset.String(),
		Status:            reservation.status.String(),
		RewardIssued:      reservation.rewardIssued,
		MetadataJSON:      reservation.metadata.String(),
		PaymentTransferID: reservation.paymentTransferID,
		RewardTransferID:  reservation.rewardTransferID,
	}
}

// confirm returns the reservation moved to confirmed for the given customer.
func (reservation Reservation) confirm(customer Principal) (Reservation, error) {
	if reservation.status != ReservationStatusPending {
		return Reservation{}, fmt.Errorf("%w: reservation %s is %s", ErrInvalidState, reservation.id, reservation.status)
	}
	if assigned, ok := reservation.Customer(); ok && assigned != customer {
		return Reservation{}, fmt.Errorf("%w: reservation %s belongs to another customer", ErrUnauthorized, reservation.id)
	}
	confirmed := reservation
	confirmed.customer = customer
	confirmed.status = ReservationStatusConfirmed
	return confirmed, nil
}

// withMetadata returns the reservation carrying replacement details. The
// lifecycle fields are untouched.
func (reservation Reservation) withMetadata(metadata MetadataJSON) Reservation {
	updated := reservation
	updated.metadata = metadata
	return updated
}

// resolve returns the reservation moved to the outcome status.
func (reservation Reservation) resolve(outcome ReservationStatus) (Reservation, error) {
	if reservation.status != ReservationStatusConfirmed {
		return Reservation{}, fmt.Errorf("%w: reservation %s is %s", ErrInvalidState, reservation.id, reservation.status)
	}
	if !CanTransition(reservation.status, outcome) {
		return Reservation{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, reservation.status, outcome)
	}
	resolved := reservation
	resolved.status = outcome
	return resolved, nil
}
