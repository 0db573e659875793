package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrValidation      = errors.New("validation failed")
	ErrUpstreamLookup  = errors.New("places lookup failed")
	ErrSessionResolve  = errors.New("session resolution failed")
	ErrNoResponse      = errors.New("no response generated")
)
