package store

import "errors"

// Sentinel errors returned by every [SecretStore] backend. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure reported by a backend, including the
	// more specific sentinels below.
	ErrStorage = errors.New("secret storage error")

	// ErrSecretNotFound is returned by Read and Delete when no blob is stored
	// under the requested name.
	ErrSecretNotFound = errors.New("secret was not found")

	// ErrInvalidSecretName is returned when a name cannot be used as a
	// storage key (empty, hidden, or not a single path component).
	ErrInvalidSecretName = errors.New("invalid secret name")
)

// Low-level database errors reported by the sqlite backend before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails mid-iteration.
	ErrScanningRows = errors.New("failed to scan secret rows")
)
