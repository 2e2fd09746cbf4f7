// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"encoding/json"
	"fmt"
)

// Verdict is the tagged result of an evaluation.
type Verdict int

const (
	// NullResult: quorum not met. There is an absence of evidence.
	NullResult Verdict = iota + 1
	// NegativeResult: quorate, but there is evidence of the absence of consensus.
	NegativeResult
	// Accepted: a consensus exists in favor of the proposition.
	Accepted
	// Rejected: a consensus exists in opposition to the proposition.
	Rejected
	// Consensus: at least one choice of a multi-choice contest passed.
	Consensus
)

var verdictNames = map[Verdict]string{
	NullResult:     "null_result",
	NegativeResult: "negative_result",
	Accepted:       "accepted",
	Rejected:       "rejected",
	Consensus:      "consensus",
}

var verdictDescriptions = map[Verdict]string{
	NullResult:     "Null result.  There is an absence of evidence.",
	NegativeResult: "Negative result.  There is evidence of the absence of consensus.",
	Accepted:       "A consensus exists in favor of the proposition.",
	Rejected:       "A consensus exists in opposition to the proposition.",
	Consensus:      "A consensus exists in favor of one or more choices.",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Description returns a human-readable explanation of the verdict.
func (v Verdict) Description() string {
	return verdictDescriptions[v]
}

// Verdicts lists all verdicts in declaration order.
func Verdicts() []Verdict {
	return []Verdict{NullResult, NegativeResult, Accepted, Rejected, Consensus}
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	name, ok := verdictNames[v]
	if !ok {
		return nil, fmt.Errorf("cannot marshal %s", v)
	}
	return json.Marshal(name)
}

// ContestResult is the outcome of an N-of-M contest. Winners holds the
// ascending indices of the choices that passed and is set only when
// Verdict is Consensus.
type ContestResult struct {
	Verdict Verdict
	Winners []int
}

// SingleResult is the outcome of a 1-of-M contest. Winner is meaningful
// only when Verdict is Consensus.
type SingleResult struct {
	Verdict Verdict
	Winner  int
}
