package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgGenerateLoadoutFailed = "Failed to generate loadout"
	ErrMsgGetItemFailed         = "Failed to get item"
	ErrMsgGetContainerFailed    = "Failed to get container"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgActorBusyError     = "Actor is busy. Try again."
)

// Health and readiness
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgTablesNotLoaded      = "definition tables not loaded"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode %s request"
	LogMsgRequestDecoded   = "%s request decoded"
	LogMsgServiceError     = "%s failed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgLoadoutGenerated = "Loadout preview generated"
)
