package csi

// Suggestion tuning for unknown ids
const (
	MaxSuggestions      = 3
	SuggestionMinLength = 3
)

// Supported definition file formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// DefaultDataFile is the embedded definition set used when no path is configured.
const DefaultDataFile = "data/default.yaml"

// ==================== Error Messages ====================

const (
	ErrMsgUnknownFormat      = "unknown definition format %q"
	ErrMsgDecodeFailed       = "failed to decode definitions"
	ErrMsgSchemaFailed       = "definitions do not match schema"
	ErrMsgStructFailed       = "definitions failed validation"
	ErrMsgDuplicateID        = "duplicate %s id %q"
	ErrMsgUnknownReference   = "%s %q references unknown %s %q"
	ErrMsgInvalidShape       = "%s %q has an invalid shape"
	ErrMsgContainerUndefined = "container %q is not defined"
	ErrMsgDidYouMean         = "did you mean %s?"
)

// ==================== Log Messages ====================

const (
	LogMsgLoaded        = "Definition tables loaded"
	LogMsgLoadingFile   = "Loading definition tables"
	LogMsgUsingEmbedded = "Using embedded definition tables"
)

// Log field keys
const (
	LogFieldPath       = "path"
	LogFieldItems      = "items"
	LogFieldContainers = "containers"
	LogFieldTeams      = "teams"
	LogFieldEquipment  = "equipment"
)
