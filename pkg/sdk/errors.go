package genie

import "github.com/retail-insight/genie/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotArray  = domain.ErrNotArray
	ErrNotObject = domain.ErrNotObject
)
