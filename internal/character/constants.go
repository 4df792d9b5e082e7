package character

// Skill and time unit scale
const (
	MaxSkill = 100
	MinTU    = 27
	// SpeedTUFactor is the number of extra TUs a maxed speed skill grants.
	SpeedTUFactor = 20
)

// Encumbrance thresholds as a fraction of max load, and the share of TUs
// lost above each.
const (
	WeightLight         = 0.2
	WeightHeavy         = 0.5
	WeightNormalPenalty = 0.3
	WeightHeavyPenalty  = 0.5
)

// Error messages
const (
	ErrMsgSkillOutOfRange = "%s skill %d outside 0-%d"
	ErrMsgNoTeam          = "character needs a team"
	ErrMsgNoInventory     = "character needs an inventory"
)
