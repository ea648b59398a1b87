package reservation

import (
	"context"
	"errors"
	"testing"
)

type recorderLogger struct {
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(_ context.Context, entry OperationLog) {
	logger.entries = append(logger.entries, entry)
}

func TestServiceLogsConfirmOperation(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	fixture := newServiceFixture(test, WithOperationLogger(logger))
	reservationID := fixture.create(test, 500)
	if err := fixture.service.ConfirmReservation(context.Background(), reservationID, fixture.customer); err != nil {
		test.Fatalf("confirm: %v", err)
	}
	if len(logger.entries) != 2 {
		test.Fatalf("expected two log entries, got %d", len(logger.entries))
	}
	created := logger.entries[0]
	if created.Operation != operationCreate || created.Principal != fixture.business || created.Status != operationStatusOK {
		test.Fatalf("unexpected create entry %+v", created)
	}
	confirmed := logger.entries[1]
	if confirmed.Operation != operationConfirm || confirmed.ReservationID != reservationID || confirmed.Amount != 500 || confirmed.Asset != fixture.asset {
		test.Fatalf("unexpected confirm entry %+v", confirmed)
	}
	if len(confirmed.TransferIDs) != 1 || confirmed.Status != operationStatusOK || confirmed.Error != nil {
		test.Fatalf("expected successful confirm with transfer id, got %+v", confirmed)
	}
}

func TestServiceLogsErrorStatus(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	fixture := newServiceFixture(test, WithOperationLogger(logger))
	err := fixture.service.ResolveReservation(context.Background(), 9, ReservationStatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		test.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Operation != operationResolve || entry.Status != operationStatusError || !errors.Is(entry.Error, ErrNotFound) {
		test.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Outcome != ReservationStatusCompleted {
		test.Fatalf("expected outcome recorded, got %s", entry.Outcome)
	}
}

func TestOperationLoggersFanOut(test *testing.T) {
	test.Parallel()
	first := &recorderLogger{}
	second := &recorderLogger{}
	loggers := OperationLoggers{first, nil, second}
	loggers.LogOperation(context.Background(), OperationLog{Operation: operationInitialize})
	if len(first.entries) != 1 || len(second.entries) != 1 {
		test.Fatalf("expected both loggers to receive the entry")
	}
}
