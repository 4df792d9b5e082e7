package action

// ==================== Error Messages ====================

const (
	ErrMsgNoCharacter = "no character to act"
	ErrMsgNoItem      = "no item to move"
	ErrMsgOverloaded  = "%s would carry %.1f of %.1f"
)

// ==================== Log Messages ====================

const (
	LogMsgItemMoved      = "Item moved"
	LogMsgMoveRejected   = "Move rejected"
	LogMsgInventoryFreed = "Inventory released"
	LogMsgPublishFailed  = "Failed to publish inventory event"
	LogMsgActorBusy      = "Actor is busy"
)

// Log field keys
const (
	LogFieldActor   = "actor"
	LogFieldItem    = "item"
	LogFieldFrom    = "from"
	LogFieldTo      = "to"
	LogFieldOutcome = "outcome"
	LogFieldTUSpent = "tu_spent"
	LogFieldTULeft  = "tu_left"
	LogFieldFreed   = "freed"
)
