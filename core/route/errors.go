package route

import "errors"

var (
	// ErrEmptyName is returned when a route is declared without a name.
	ErrEmptyName = errors.New("route name must not be empty")

	// ErrInvalidPattern is returned for a malformed path pattern.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrDuplicateParam is returned when a pattern or query declaration
	// binds the same parameter key twice.
	ErrDuplicateParam = errors.New("duplicate parameter key")

	// ErrDuplicateRoute is returned when a Set already holds the name.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrUnknownNavigatorKind is returned by the loader for a navigator
	// kind other than "stack" or "tabs".
	ErrUnknownNavigatorKind = errors.New("unknown navigator kind")
)
