package loadout

// Default balance values
const (
	DefaultWeaponlessBonus    = 0.4
	DefaultAkimboChance       = 0.3
	DefaultClipMultiplier     = 1
	DefaultHandClipMultiplier = 3
	DefaultClipRoundCap       = 11
	DefaultPrimaryRollRange   = 100
	DefaultMiscRollRange      = 10
	DefaultPoolCacheSize      = 64
)

// Equip paths reported in Result.Kind
const (
	KindMelee  = "melee"
	KindRobot  = "robot"
	KindNormal = "normal"
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidConfig       = "invalid loadout config"
	ErrMsgNoEngine            = "generator needs an engine and item definitions"
	ErrMsgNoCharacter         = "no character to equip"
	ErrMsgNoEquipment         = "team %s needs an equipment definition"
	ErrMsgMeleeNotTwoHanded   = "melee weapon %s of team %s is not fire-two-handed"
	ErrMsgRobotWeaponMissing  = "robot team %s has no weapon"
	ErrMsgRobotWeaponUnusable = "robot weapon %s of team %s has no ammo and is not a melee weapon"
	ErrMsgNotPacked           = "could not install %s for team %s"
)

// ==================== Log Messages ====================

const (
	LogMsgLoadoutGenerated = "Loadout generated"
	LogMsgSkippedWeight    = "Skipped item over weight budget"
	LogMsgSkippedTU        = "Skipped item over TU budget"
	LogMsgNoAmmo           = "No ammo in equipment for weapon"
	LogMsgUnarmed          = "Actor left unarmed"
	LogMsgPublishFailed    = "Failed to publish loadout event"
)

// Log field keys
const (
	LogFieldActor     = "actor"
	LogFieldTeam      = "team"
	LogFieldEquipment = "equipment"
	LogFieldItem      = "item"
	LogFieldContainer = "container"
	LogFieldWeight    = "weight"
	LogFieldMaxWeight = "max_weight"
	LogFieldTU        = "tu"
	LogFieldMaxTU     = "max_tu"
	LogFieldKind      = "kind"
	LogFieldCount     = "count"
	LogFieldArmed     = "armed"
)
