// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package consensus implements the decision rules for measuring consensus
from vote tallies described in "Measuring social consensus"
(doi:10.48550/arXiv.2411.12067).

Callers hand in aggregated counts, never ballots. Every function is pure:
the same inputs always give the same result, and calls may run in parallel.
Proportions are *big.Rat values so that a tally sitting exactly on a
threshold such as 2/3 compares exactly.

# Evaluators

	Quorate(q, present, voting)                              → bool
	MeetsThreshold(votes, population, t)                     → bool
	QuestionSimple(quorum, votesY, votesN, T)                → Verdict
	Question(q, present, votesY, votesN, population, t)      → Verdict
	NOfM(q, present, voting, votes, population, t)           → ContestResult
	OneOfM(q, present, votes, population, t)                 → SingleResult

# Quorum

Quorum is met by a minimum number present (NumPresent), a minimum number
not abstaining (NumVoting), or a minimum proportion of those present not
abstaining (ProportionVoting). A body is never quorate if nobody votes.

If quorum is defined as a proportion of the nominal or current size of the
body, reduce it to a count with QuorumCount and pass NumPresent or
NumVoting:

	n, err := consensus.QuorumCount(99, consensus.Ratio(1, 3)) // 33
	q := consensus.NumPresent(n)

# Thresholds

Let P be the effective population and V the votes for one choice:

	Majority        V > P/2
	Supermajority   V ≥ TP with 1/2 < T ≤ 1
	Near-unanimity  V ≥ P−C with 0 ≤ C < P/2
	Unanimity       V = P

The population used for the threshold need not match the counts used for
quorum; see PopulationBasis and Tally.EffectivePopulation.

# Verdicts

	NullResult      quorum not met; an absence of evidence
	NegativeResult  quorate, but evidence of the absence of consensus
	Accepted        consensus in favor of the proposition
	Rejected        consensus in opposition to the proposition
	Consensus       one or more choices of a contest passed

# Errors

All inputs are checked before any result is computed. Each error wraps one
of ErrTypeMismatch, ErrRangeViolation, ErrLogicViolation or
ErrInvalidSpecification:

	_, err := consensus.Question(q, 8, 5, 4, 9, consensus.Majority())
	if errors.Is(err, consensus.ErrLogicViolation) {
		// more votes than members present
	}
*/
package consensus

// Version of the rule set.
const Version = "1.0"
