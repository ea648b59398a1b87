// Package oplog writes reservation operation logs through zap.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"go.uber.org/zap"
)

// ZapLogger implements reservation.OperationLogger with one structured line per operation.
type ZapLogger struct {
	logger *zap.Logger
}

// New returns a ZapLogger; a nil logger discards entries.
func New(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger.Named("reservation")}
}

// LogOperation writes entry at info level, or warn level when the operation failed.
func (zapLogger *ZapLogger) LogOperation(_ context.Context, entry reservation.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
		zap.Uint64("reservation_id", entry.ReservationID.Uint64()),
	}
	if !entry.Principal.IsZero() {
		fields = append(fields, zap.String("principal", entry.Principal.String()))
	}
	if entry.Amount != 0 {
		fields = append(fields, zap.Int64("amount", entry.Amount.Int64()))
	}
	if !entry.Asset.IsZero() {
		fields = append(fields, zap.String("asset", entry.Asset.String()))
	}
	if entry.Outcome.Valid() {
		fields = append(fields, zap.String("outcome", entry.Outcome.String()))
	}
	if len(entry.TransferIDs) > 0 {
		fields = append(fields, zap.Strings("transfer_ids", entry.TransferIDs))
	}
	if entry.Error != nil {
		zapLogger.logger.Warn("reservation operation failed", append(fields, zap.Error(entry.Error))...)
		return
	}
	zapLogger.logger.Info("reservation operation", fields...)
}
