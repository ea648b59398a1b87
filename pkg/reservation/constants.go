package reservation

const (
	operationInitialize = "initialize"
	operationCreate     = "create_reservation"
	operationConfirm    = "confirm_reservation"
	operationResolve    = "resolve_reservation"
	operationMetadata   = "update_reservation_metadata"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	statusValuePending   = "pending"
	statusValueConfirmed = "confirmed"
	statusValueNoShow    = "no_show"
	statusValueCompleted = "completed"
	statusValueCancelled = "cancelled"

	defaultRewardUnits    int64 = 100
	defaultRewardDecimals uint8 = 7

	eventKeyDelimiter = ":"
)
