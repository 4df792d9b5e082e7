package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Definition lookups
	ErrMsgItemNotFound       = "item not found"
	ErrMsgContainerNotFound  = "container not found"
	ErrMsgTeamNotFound       = "team not found"
	ErrMsgEquipmentNotFound  = "equipment not found"
	ErrMsgDamageTypeNotFound = "damage type not found"

	// Actor errors
	ErrMsgActorLocked = "actor is locked"
	ErrMsgOverloaded  = "actor would be overloaded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrContainerNotFound  = errors.New(ErrMsgContainerNotFound)
	ErrTeamNotFound       = errors.New(ErrMsgTeamNotFound)
	ErrEquipmentNotFound  = errors.New(ErrMsgEquipmentNotFound)
	ErrDamageTypeNotFound = errors.New(ErrMsgDamageTypeNotFound)

	ErrActorLocked = errors.New(ErrMsgActorLocked)
	ErrOverloaded  = errors.New(ErrMsgOverloaded)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
