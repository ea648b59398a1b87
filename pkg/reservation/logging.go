package reservation

import "context"

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing reservation operation.
type OperationLog struct {
	Operation     string
	ReservationID ReservationID
	Principal     Principal
	Amount        Amount
	Asset         AssetID
	Outcome       ReservationStatus
	TransferIDs   []string
	Status        string
	Error         error
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		service.logger = logger
	}
}

// WithRewardPolicy overrides the loyalty reward paid on completion.
func WithRewardPolicy(policy RewardPolicy) ServiceOption {
	return func(service *Service) {
		service.rewardPolicy = policy
	}
}

// WithAssetCatalog rejects reservations and configurations naming assets the
// catalog cannot move.
func WithAssetCatalog(catalog AssetCatalog) ServiceOption {
	return func(service *Service) {
		service.assets = catalog
	}
}

// OperationLoggers fans one entry out to several loggers.
type OperationLoggers []OperationLogger

// LogOperation forwards the entry to every non-nil logger.
func (loggers OperationLoggers) LogOperation(ctx context.Context, entry OperationLog) {
	for _, logger := range loggers {
		if logger != nil {
			logger.LogOperation(ctx, entry)
		}
	}
}
