package inventory

import "errors"

// Caller-contract and placement errors. Invariant breaches panic instead.
var (
	ErrNoDefinition      = errors.New(ErrMsgNoDefinition)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrContainerOccupied = errors.New(ErrMsgContainerOccupied)
	ErrNoSpace           = errors.New(ErrMsgNoSpace)
	ErrNotInContainer    = errors.New(ErrMsgNotInContainer)
	ErrNoContainer       = errors.New(ErrMsgNoContainer)
)
