package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat wraps the errors of every failed handler.
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
