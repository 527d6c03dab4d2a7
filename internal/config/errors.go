package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or an unknown runtime mode).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a non-positive body limit or negative proxy depth).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty upload directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMirrorConfigs indicates an unknown mirror kind or a mirror
	// missing its bucket or container.
	ErrInvalidMirrorConfigs = errors.New("invalid upload mirror configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, an empty backup schedule while backups are enabled).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnknownFeature is returned for a FEATURES entry that names no
	// known module.
	ErrUnknownFeature = errors.New("unknown feature")
)
