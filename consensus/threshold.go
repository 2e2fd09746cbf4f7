// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
)

// MeetsThreshold reports whether votes in favor of one choice reach the
// threshold of consensus t within the effective population.
func MeetsThreshold(votes, population int, t ThresholdSpec) (bool, error) {
	if err := checkAll(
		checkNonNegative(votes, "votes"),
		checkNonNegative(population, "population"),
	); err != nil {
		return false, err
	}
	if votes > population {
		return false, fmt.Errorf("%w: number of votes (%d) exceeds size of population (%d)", ErrLogicViolation, votes, population)
	}
	if err := t.validate(population); err != nil {
		return false, err
	}
	return meetsThreshold(votes, population, t), nil
}

// meetsThreshold assumes validated inputs.
func meetsThreshold(votes, population int, t ThresholdSpec) bool {
	switch t.kind {
	case MajorityThreshold:
		// V > P/2, written as V > P-V.
		return votes > population-votes
	case SupermajorityThreshold:
		v := new(big.Rat).SetInt64(int64(votes))
		required := new(big.Rat).Mul(t.proportion, new(big.Rat).SetInt64(int64(population)))
		return v.Cmp(required) >= 0
	case NearUnanimityThreshold:
		return votes >= population-t.complement
	case UnanimityThreshold:
		return votes == population
	}
	return false
}
