// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
)

var (
	ratZero = new(big.Rat)
	ratHalf = big.NewRat(1, 2)
	ratOne  = big.NewRat(1, 1)
)

// checkNonNegative fails if value < 0.
func checkNonNegative(value int, name string) error {
	if value < 0 {
		return fmt.Errorf("%w: parameter %s has a negative value (%d)", ErrTypeMismatch, name, value)
	}
	return nil
}

// checkPositive fails if value < 1.
func checkPositive(value int, name string) error {
	if err := checkNonNegative(value, name); err != nil {
		return err
	}
	if value == 0 {
		return fmt.Errorf("%w: parameter %s is zero", ErrRangeViolation, name)
	}
	return nil
}

// checkProportion requires 0 < value <= 1.
func checkProportion(value *big.Rat, name string) error {
	if value == nil {
		return fmt.Errorf("%w: parameter %s is not a rational", ErrTypeMismatch, name)
	}
	if value.Cmp(ratZero) <= 0 {
		return fmt.Errorf("%w: parameter %s is <= 0 (%s)", ErrRangeViolation, name, value.RatString())
	}
	if value.Cmp(ratOne) > 0 {
		return fmt.Errorf("%w: parameter %s is > 1 (%s)", ErrRangeViolation, name, value.RatString())
	}
	return nil
}

// checkSupermajority requires 1/2 < value <= 1.
func checkSupermajority(value *big.Rat, name string) error {
	if err := checkProportion(value, name); err != nil {
		return err
	}
	if value.Cmp(ratHalf) <= 0 {
		return fmt.Errorf("%w: parameter %s is <= 1/2 (%s)", ErrRangeViolation, name, value.RatString())
	}
	return nil
}

// checkVoteList requires a non-empty list of non-negative counts.
func checkVoteList(values []int, name string) error {
	if values == nil {
		return fmt.Errorf("%w: parameter %s is not a list", ErrTypeMismatch, name)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: parameter %s is a zero-length list", ErrRangeViolation, name)
	}
	for i, v := range values {
		if err := checkNonNegative(v, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// checkAll returns the first non-nil error.
func checkAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
