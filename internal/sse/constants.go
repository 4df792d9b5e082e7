package sse

import "time"

// StreamBuffer is how many frames a slow stream may fall behind before it
// starts missing them.
const StreamBuffer = 64

// KeepaliveInterval is how often an idle stream gets a comment line.
const KeepaliveInterval = 30 * time.Second

// EventTypeConnected opens every stream; bus events keep their bus type name.
const EventTypeConnected = "connected"

// QueryParamTypes filters the stream, e.g. ?types=loadout.generated,inventory.released
const QueryParamTypes = "types"

const keepaliveFrame = ": keepalive\n\n"

// Log messages
const (
	LogMsgStreamOpened = "Event stream opened"
	LogMsgStreamClosed = "Event stream closed"
	LogMsgFrameDropped = "Event stream buffer full, frame dropped"
	LogMsgSubscribed   = "Event stream hub subscribed to bus"
	LogMsgWriteError   = "Failed to write event frame"
	LogMsgBadFilter    = "Rejected event stream filter"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "streaming not supported"
	ErrMsgUnknownType          = "unknown event type %q"
	ErrMsgHubStopped           = "event stream shutting down"
)
