package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTarget is reported when an apply call has no target entity.
	ErrMissingTarget = zerr.New("target entity is missing")

	// ErrUnknownDefinition is reported when a mod identifier has no registered definition.
	ErrUnknownDefinition = zerr.New("no definition registered for identifier")

	// ErrMissingStatsRoot is reported when the target entity exposes no indexable stats root.
	ErrMissingStatsRoot = zerr.New("target has no stats root")

	// ErrStatNotFound is reported when a modifier key is absent from the stat index.
	ErrStatNotFound = zerr.New("stat not found")

	// ErrPropertyReadFailed is recorded when reading a property member fails during indexing.
	ErrPropertyReadFailed = zerr.New("failed to read property")

	// ErrDefinitionsReadFailed is returned when a definition file cannot be read.
	ErrDefinitionsReadFailed = zerr.New("failed to read definition file")

	// ErrDefinitionsParseFailed is returned when a definition file cannot be parsed.
	ErrDefinitionsParseFailed = zerr.New("failed to parse definition file")

	// ErrDefinitionsDirNotFound is returned when the definitions directory does not exist.
	ErrDefinitionsDirNotFound = zerr.New("definitions directory not found")

	// ErrInvalidDefinitionID is returned when a definition id is empty or not in the mod namespace.
	ErrInvalidDefinitionID = zerr.New("invalid definition id, expected 'mod:<name>'")

	// ErrDuplicateDefinition is returned when two definitions share the same id.
	ErrDuplicateDefinition = zerr.New("duplicate definition id")

	// ErrEmptyStatKey is returned when a modifier in a definition has no stat key.
	ErrEmptyStatKey = zerr.New("modifier has an empty stat key")

	// ErrWorldReadFailed is returned when a world file cannot be read.
	ErrWorldReadFailed = zerr.New("failed to read world file")

	// ErrWorldParseFailed is returned when a world file cannot be parsed.
	ErrWorldParseFailed = zerr.New("failed to parse world file")

	// ErrUnsupportedWorldValue is returned when a world file contains a value kind that has no stat graph mapping.
	ErrUnsupportedWorldValue = zerr.New("unsupported value in world file")

	// ErrDuplicateEntity is returned when two entities in a world share the same name.
	ErrDuplicateEntity = zerr.New("duplicate entity name")

	// ErrEntityNotFound is returned when a named entity does not exist in the world.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrStaleHandle is returned when a root handle refers to a freed arena slot.
	ErrStaleHandle = zerr.New("stats root handle is stale")

	// ErrApplyFailed is returned by the CLI when at least one item could not be applied.
	ErrApplyFailed = zerr.New("one or more items could not be applied")
)
