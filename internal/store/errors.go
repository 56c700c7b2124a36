package store

import "errors"

// Sentinel errors returned by [DB.Ping]. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrDatabaseUnavailable is returned when the database cannot be reached
	// for a reason that is expected to clear up (connection refused, timeout,
	// server starting up).
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrDatabaseFailure is returned for any other ping failure, such as bad
	// credentials or an unknown database.
	ErrDatabaseFailure = errors.New("database failure")
)
