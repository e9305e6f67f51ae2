package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and namespace
// resolution when settings are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or an s3 backend without a bucket).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid session settings
	// (for example, a zero tick interval or an unknown export format).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidNamespace indicates a namespace name that cannot be used as a
	// file name component.
	ErrInvalidNamespace = errors.New("invalid namespace")
	// ErrNamespaceConfig indicates an unreadable or unwritable namespace
	// configuration file.
	ErrNamespaceConfig = errors.New("namespace configuration error")
)
