// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import "errors"

// Every error returned by this package wraps exactly one of these.
var (
	// ErrTypeMismatch: a parameter is not of the required kind (negative
	// count, missing proportion, missing vote list).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRangeViolation: a value is outside its required bound.
	ErrRangeViolation = errors.New("range violation")

	// ErrLogicViolation: cross-parameter consistency failed.
	ErrLogicViolation = errors.New("logic violation")

	// ErrInvalidSpecification: unrecognized quorum or threshold kind.
	ErrInvalidSpecification = errors.New("invalid specification")
)

// ErrorKind returns the name of the sentinel err wraps, or "" if none.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrRangeViolation):
		return "range_violation"
	case errors.Is(err, ErrLogicViolation):
		return "logic_violation"
	case errors.Is(err, ErrInvalidSpecification):
		return "invalid_specification"
	}
	return ""
}
