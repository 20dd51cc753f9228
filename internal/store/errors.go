package store

import "errors"

// Sentinel errors of the local record stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoForwarder is returned by Send when the store has no relay to
	// forward records to other DIDs.
	ErrNoForwarder = errors.New("no record forwarder configured")
)

// Low-level database operation errors. These are returned (or wrapped) when
// a SQL-level operation fails before any store logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
