// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
)

// Tally holds the aggregated counts of a multi-choice contest.
type Tally struct {
	Present    int   // members present
	Voting     int   // members that did not abstain
	Population int   // effective population used for the threshold
	Votes      []int // votes per choice
}

// Validate enforces the per-field and cross-field invariants of a tally.
// The vote total must lie between Voting and len(Votes)*Voting.
func (t Tally) Validate() error {
	if err := checkAll(
		checkNonNegative(t.Present, "present"),
		checkNonNegative(t.Voting, "voting"),
		checkVoteList(t.Votes, "votes"),
		checkNonNegative(t.Population, "population"),
	); err != nil {
		return err
	}

	vsum := sumVotes(t.Votes)
	voting := big.NewInt(int64(t.Voting))
	bound := new(big.Int).Mul(big.NewInt(int64(len(t.Votes))), voting)
	switch {
	case t.Voting > t.Present:
		return fmt.Errorf("%w: number voting (%d) exceeds number present (%d)", ErrLogicViolation, t.Voting, t.Present)
	case t.Voting > t.Population:
		return fmt.Errorf("%w: number voting (%d) exceeds size of population (%d)", ErrLogicViolation, t.Voting, t.Population)
	case voting.Cmp(vsum) > 0:
		return fmt.Errorf("%w: number voting (%d) exceeds number of votes (%s)", ErrLogicViolation, t.Voting, vsum)
	case vsum.Cmp(bound) > 0:
		return fmt.Errorf("%w: number of votes (%s) exceeds M times number voting (%s)", ErrLogicViolation, vsum, bound)
	}
	return nil
}

// NOfM evaluates an N-of-M contest. Each choice is judged on its own
// against the threshold; no attempt is made to find a consensus slate, so
// more than one index may be returned. Since N is not a parameter, the
// caller must ensure the votes total at most N times the number voting;
// only the upper bound N = M is checked here.
func NOfM(q QuorumSpec, present, voting int, votes []int, population int, t ThresholdSpec) (ContestResult, error) {
	tally := Tally{Present: present, Voting: voting, Population: population, Votes: votes}
	if err := tally.Validate(); err != nil {
		return ContestResult{}, err
	}
	if err := checkAll(q.validate(), t.validate(population)); err != nil {
		return ContestResult{}, err
	}

	// A single choice may still exceed the population; that is a caller error.
	for i, v := range votes {
		if v > population {
			return ContestResult{}, fmt.Errorf("%w: number of votes for choice %d (%d) exceeds size of population (%d)",
				ErrLogicViolation, i, v, population)
		}
	}

	if !quorate(q, present, voting) {
		return ContestResult{Verdict: NullResult}, nil
	}

	var winners []int
	for i, v := range votes {
		if meetsThreshold(v, population, t) {
			winners = append(winners, i)
		}
	}
	if len(winners) == 0 {
		return ContestResult{Verdict: NegativeResult}, nil
	}
	return ContestResult{Verdict: Consensus, Winners: winners}, nil
}

// OneOfM evaluates a 1-of-M contest: NOfM with the number voting equal to
// the vote total. A passing result names exactly one choice.
func OneOfM(q QuorumSpec, present int, votes []int, population int, t ThresholdSpec) (SingleResult, error) {
	if err := checkVoteList(votes, "votes"); err != nil {
		return SingleResult{}, err
	}
	vsum := sumVotes(votes)
	if !vsum.IsInt64() || vsum.Int64() > int64(maxInt) {
		return SingleResult{}, fmt.Errorf("%w: number of votes (%s) overflows", ErrRangeViolation, vsum)
	}

	res, err := NOfM(q, present, int(vsum.Int64()), votes, population, t)
	if err != nil {
		return SingleResult{}, err
	}
	switch res.Verdict {
	case NullResult, NegativeResult:
		return SingleResult{Verdict: res.Verdict}, nil
	}
	if len(res.Winners) != 1 {
		return SingleResult{}, fmt.Errorf("%w: wrong number of winners (%d)", ErrLogicViolation, len(res.Winners))
	}
	return SingleResult{Verdict: Consensus, Winner: res.Winners[0]}, nil
}

const maxInt = int(^uint(0) >> 1)

func sumVotes(votes []int) *big.Int {
	sum := new(big.Int)
	for _, v := range votes {
		sum.Add(sum, big.NewInt(int64(v)))
	}
	return sum
}
