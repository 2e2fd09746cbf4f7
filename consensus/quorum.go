// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
)

// Quorate reports whether quorum q is met with the given numbers of members
// present and voting. A body is never quorate if nobody votes.
func Quorate(q QuorumSpec, present, voting int) (bool, error) {
	if err := checkAll(
		checkNonNegative(present, "present"),
		checkNonNegative(voting, "voting"),
	); err != nil {
		return false, err
	}
	if voting > present {
		return false, fmt.Errorf("%w: number voting (%d) exceeds number present (%d)", ErrLogicViolation, voting, present)
	}
	if err := q.validate(); err != nil {
		return false, err
	}
	return quorate(q, present, voting), nil
}

// quorate assumes validated inputs.
func quorate(q QuorumSpec, present, voting int) bool {
	switch q.kind {
	case NumPresentQuorum:
		return present >= q.count && voting > 0
	case NumVotingQuorum:
		return voting >= q.count
	case ProportionVotingQuorum:
		if present == 0 {
			return false
		}
		return big.NewRat(int64(voting), int64(present)).Cmp(q.proportion) >= 0
	}
	return false
}

// QuorumCount reduces a quorum defined as a proportion p of a body of the
// given size (nominal or current) to a member count, ceil(p*population),
// suitable for NumPresent or NumVoting.
func QuorumCount(population int, p *big.Rat) (int, error) {
	if err := checkAll(
		checkNonNegative(population, "population"),
		checkProportion(p, "proportion"),
	); err != nil {
		return 0, err
	}
	product := new(big.Rat).Mul(p, new(big.Rat).SetInt64(int64(population)))
	return int(ceilRat(product).Int64()), nil
}

// ceilRat returns the smallest integer >= r, for r >= 0.
func ceilRat(r *big.Rat) *big.Int {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
