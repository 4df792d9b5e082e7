package inventory

// None is the coordinate sentinel for "no position": ask the engine to find
// space, or no space was found.
const None = -1

// Default allocator tag when the caller does not inject one.
const DefaultAllocatorTag = "inventory"

// ==================== Error Messages ====================

const (
	ErrMsgNoDefinition      = "item has no definition"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgContainerOccupied = "container is occupied"
	ErrMsgNoSpace           = "no space in container"
	ErrMsgNotInContainer    = "item is not in container"
	ErrMsgNoContainer       = "unknown container"
)

// Fatal invariant breaches
const (
	FatalMsgSingleHoldsMany   = "single container %s of %s holds %d items"
	FatalMsgAmountNotOne      = "item %s in non-temp container %s of %s has amount %d"
	FatalMsgDoubleFree        = "allocator %s: item %p freed twice or never allocated"
	FatalMsgReturnAmmoFailed  = "could not return ammo %s to container %s of %s"
	FatalMsgRestoreItemFailed = "could not restore item %s to container %s of %s"
)

// ==================== Log Messages ====================

const (
	LogMsgStacked          = "Stacked item in temp container"
	LogMsgPartialRemove    = "Removed one unit from stack"
	LogMsgNoSpace          = "No space for item"
	LogMsgInvariantBreach  = "Inventory invariant breached"
	LogMsgArmourSwapFailed = "Armour swap failed, source restored"
	LogMsgReloadSwap       = "Swapped weapon ammo"
	LogMsgContainerEmptied = "Container emptied"
)

// Log field keys for structured logging
const (
	LogFieldEngine    = "engine"
	LogFieldItem      = "item"
	LogFieldContainer = "container"
	LogFieldAmount    = "amount"
	LogFieldFreed     = "freed"
	LogFieldWeapon    = "weapon"
	LogFieldAmmo      = "ammo"
)
