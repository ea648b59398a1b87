package reservation

import "fmt"

// ReservationStatus is the closed set of reservation lifecycle states.
type ReservationStatus uint8

const (
	statusUnknown ReservationStatus = iota
	ReservationStatusPending
	ReservationStatusConfirmed
	ReservationStatusNoShow
	ReservationStatusCompleted
	// ReservationStatusCancelled is never entered by current operations but
	// must stay readable from persisted data.
	ReservationStatusCancelled
)

var statusNames = map[ReservationStatus]string{
	ReservationStatusPending:   statusValuePending,
	ReservationStatusConfirmed: statusValueConfirmed,
	ReservationStatusNoShow:    statusValueNoShow,
	ReservationStatusCompleted: statusValueCompleted,
	ReservationStatusCancelled: statusValueCancelled,
}

// allowedTransitions maps a state to the states it may move to.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusNoShow},
	ReservationStatusNoShow:    {},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

// ParseReservationStatus maps a stored or transported value to a status.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	for status, name := range statusNames {
		if name == raw {
			return status, nil
		}
	}
	return statusUnknown, fmt.Errorf("%w: reservation status %q", ErrInvalidInput, raw)
}

// String returns the canonical status name.
func (status ReservationStatus) String() string {
	name, ok := statusNames[status]
	if !ok {
		return "unknown"
	}
	return name
}

// Valid reports whether the status is one of the known states.
func (status ReservationStatus) Valid() bool {
	_, ok := statusNames[status]
	return ok
}

// IsTerminal reports whether no transition leaves the status.
func (status ReservationStatus) IsTerminal() bool {
	return status.Valid() && len(allowedTransitions[status]) == 0
}

// CanTransition checks whether a move from one status to another is defined.
func CanTransition(from ReservationStatus, to ReservationStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
