package domain

import "errors"

var (
	// ErrNotArray signals that a catalog source is not a JSON array at the
	// top level.
	ErrNotArray = errors.New("catalog source must be a JSON array")
	// ErrNotObject signals a catalog record that is not a JSON object.
	ErrNotObject = errors.New("catalog record must be a JSON object")
)
