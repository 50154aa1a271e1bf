package domain

import "errors"

var (
	// ErrProjectExists signals a duplicate project name, either found by
	// the pre-insert lookup or raised by the unique constraint.
	ErrProjectExists = errors.New("project already exists")

	// ErrValidation signals bad request parameters (pagination bounds,
	// timestamp formats).
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamRejected signals that a downstream service reported a
	// business failure for this request. Not retried.
	ErrUpstreamRejected = errors.New("upstream rejected request")
)
