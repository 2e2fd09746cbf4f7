// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
)

// QuestionSimple measures consensus on a yes-or-no question using a
// supermajority T of the votes cast as the threshold. quorum is a plain
// minimum number of votes. Returns NullResult, NegativeResult, Accepted or
// Rejected.
func QuestionSimple(quorum, votesY, votesN int, threshold *big.Rat) (Verdict, error) {
	if err := checkAll(
		checkPositive(quorum, "quorum"),
		checkNonNegative(votesY, "votes_y"),
		checkNonNegative(votesN, "votes_n"),
		checkSupermajority(threshold, "threshold"),
	); err != nil {
		return 0, err
	}

	votes := addCounts(votesY, votesN)
	if votes.Cmp(big.NewInt(int64(quorum))) < 0 {
		return NullResult, nil
	}

	p := new(big.Rat).SetFrac(big.NewInt(int64(votesY)), votes)
	switch {
	case p.Cmp(threshold) >= 0:
		return Accepted, nil
	case p.Cmp(new(big.Rat).Sub(ratOne, threshold)) <= 0:
		return Rejected, nil
	default:
		return NegativeResult, nil
	}
}

// Question measures consensus on a yes-or-no question under any
// combination of quorum q and threshold t. The number voting is
// votesY+votesN. When both sides would pass, Accepted wins.
func Question(q QuorumSpec, present, votesY, votesN, population int, t ThresholdSpec) (Verdict, error) {
	if err := checkAll(
		checkNonNegative(votesY, "votes_y"),
		checkNonNegative(votesN, "votes_n"),
		checkNonNegative(present, "present"),
		checkNonNegative(population, "population"),
	); err != nil {
		return 0, err
	}

	total := addCounts(votesY, votesN)
	if total.Cmp(big.NewInt(int64(present))) > 0 {
		return 0, fmt.Errorf("%w: number of votes (%s) exceeds number present (%d)", ErrLogicViolation, total, present)
	}
	if total.Cmp(big.NewInt(int64(population))) > 0 {
		return 0, fmt.Errorf("%w: number of votes (%s) exceeds size of population (%d)", ErrLogicViolation, total, population)
	}
	// Bounded by present, so it fits.
	voting := int(total.Int64())
	if err := checkAll(q.validate(), t.validate(population)); err != nil {
		return 0, err
	}

	switch {
	case !quorate(q, present, voting):
		return NullResult, nil
	case meetsThreshold(votesY, population, t):
		return Accepted, nil
	case meetsThreshold(votesN, population, t):
		return Rejected, nil
	default:
		return NegativeResult, nil
	}
}

// addCounts returns a+b without wrapping.
func addCounts(a, b int) *big.Int {
	return new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b)))
}
