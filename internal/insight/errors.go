package insight

// invalidRequestError signals malformed input for 400 mapping.
type invalidRequestError struct{ msg string }

func (e invalidRequestError) Error() string { return e.msg }

// ErrInvalidRequest constructs an invalidRequestError.
func ErrInvalidRequest(msg string) error { return invalidRequestError{msg: msg} }

// IsInvalidRequest reports whether err indicates bad input (return 400).
func IsInvalidRequest(err error) bool {
	_, ok := err.(invalidRequestError)
	return ok
}

// notFoundError signals a missing database or table for 404 mapping.
type notFoundError struct{ kind, name string }

func (e notFoundError) Error() string { return e.kind + " not found: " + e.name }

// ErrNotFound constructs a notFoundError for the named entity.
func ErrNotFound(kind, name string) error { return notFoundError{kind: kind, name: name} }

// IsNotFound reports whether the error indicates a missing entity.
func IsNotFound(err error) bool {
	_, ok := err.(notFoundError)
	return ok
}

// tooBusyError signals summary admission overflow for 429 mapping.
type tooBusyError struct{}

func (tooBusyError) Error() string { return "too many concurrent summaries" }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	_, ok := err.(tooBusyError)
	return ok
}

// dependencyUnavailableError signals broken AWS credentials or connectivity
// so the HTTP layer can return 503 Service Unavailable instead of 500.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a failed runtime dependency.
func IsDependencyUnavailable(err error) bool {
	_, ok := err.(dependencyUnavailableError)
	return ok
}
