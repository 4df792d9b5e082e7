package loadout

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the balance values of the generator. They tune how often
// actors get what, not whether a loadout is valid.
type Config struct {
	// WeaponlessBonus raises sidearm odds for actors without a primary and
	// is the chance of an extra pass over grenades and blades.
	WeaponlessBonus float64 `validate:"gte=0,lte=1"`
	// AkimboChance is the chance of a second one-handed sidearm.
	AkimboChance float64 `validate:"gte=0,lte=1"`
	// ClipMultiplier and HandClipMultiplier bound spare clips; the hand
	// value applies when the weapon went into the right hand.
	ClipMultiplier     int `validate:"gte=0"`
	HandClipMultiplier int `validate:"gte=0"`
	// ClipRoundCap stops packing spare clips once they carry more rounds.
	ClipRoundCap int `validate:"gte=0"`
	// PrimaryRollRange is the d100 the weapon and armour rolls use.
	PrimaryRollRange int `validate:"gt=0"`
	// MiscRollRange is the die for the single misc item roll.
	MiscRollRange int `validate:"gt=0"`
	// PoolCacheSize bounds the candidate pools kept per equipment table;
	// zero disables caching.
	PoolCacheSize int `validate:"gte=0"`
}

// DefaultConfig returns the stock balance values.
func DefaultConfig() Config {
	return Config{
		WeaponlessBonus:    DefaultWeaponlessBonus,
		AkimboChance:       DefaultAkimboChance,
		ClipMultiplier:     DefaultClipMultiplier,
		HandClipMultiplier: DefaultHandClipMultiplier,
		ClipRoundCap:       DefaultClipRoundCap,
		PrimaryRollRange:   DefaultPrimaryRollRange,
		MiscRollRange:      DefaultMiscRollRange,
		PoolCacheSize:      DefaultPoolCacheSize,
	}
}

var configValidator = validator.New()

// Validate keeps probabilities in [0,1] and counts non-negative.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}
