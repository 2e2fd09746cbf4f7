// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import (
	"fmt"
	"math/big"
	"strings"
)

// QuorumKind selects how quorum is measured.
type QuorumKind int

const (
	// NumPresentQuorum: a number of members that must be present.
	NumPresentQuorum QuorumKind = iota + 1
	// NumVotingQuorum: a number of members that must not abstain.
	NumVotingQuorum
	// ProportionVotingQuorum: a proportion of members present that must not abstain.
	ProportionVotingQuorum
)

var quorumKindNames = map[QuorumKind]string{
	NumPresentQuorum:       "num_present",
	NumVotingQuorum:        "num_voting",
	ProportionVotingQuorum: "proportion_voting",
}

var quorumKindDescriptions = map[QuorumKind]string{
	NumPresentQuorum:       "Number of members that must be present",
	NumVotingQuorum:        "Number of members that must not abstain",
	ProportionVotingQuorum: "Proportion of members present that must not abstain",
}

func (k QuorumKind) String() string {
	if name, ok := quorumKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("QuorumKind(%d)", int(k))
}

// Description returns a human-readable explanation of the kind.
func (k QuorumKind) Description() string {
	return quorumKindDescriptions[k]
}

// QuorumKinds lists the valid quorum kinds in declaration order.
func QuorumKinds() []QuorumKind {
	return []QuorumKind{NumPresentQuorum, NumVotingQuorum, ProportionVotingQuorum}
}

// ParseQuorumKind maps a name such as "num_voting" to its kind.
func ParseQuorumKind(name string) (QuorumKind, error) {
	for k, n := range quorumKindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown quorum kind %q", ErrInvalidSpecification, name)
}

// ThresholdKind selects the consensus threshold rule.
type ThresholdKind int

const (
	// MajorityThreshold: V > P/2.
	MajorityThreshold ThresholdKind = iota + 1
	// SupermajorityThreshold: V >= T*P with 1/2 < T <= 1.
	SupermajorityThreshold
	// NearUnanimityThreshold: V >= P-C with 0 <= C < P/2.
	NearUnanimityThreshold
	// UnanimityThreshold: V = P.
	UnanimityThreshold
)

var thresholdKindNames = map[ThresholdKind]string{
	MajorityThreshold:      "majority",
	SupermajorityThreshold: "supermajority",
	NearUnanimityThreshold: "near_unanimity",
	UnanimityThreshold:     "unanimity",
}

var thresholdKindDescriptions = map[ThresholdKind]string{
	MajorityThreshold:      "Majority threshold",
	SupermajorityThreshold: "Supermajority threshold",
	NearUnanimityThreshold: "Near-unanimity threshold",
	UnanimityThreshold:     "Unanimity threshold",
}

func (k ThresholdKind) String() string {
	if name, ok := thresholdKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ThresholdKind(%d)", int(k))
}

// Description returns a human-readable explanation of the kind.
func (k ThresholdKind) Description() string {
	return thresholdKindDescriptions[k]
}

// ThresholdKinds lists the valid threshold kinds in declaration order.
func ThresholdKinds() []ThresholdKind {
	return []ThresholdKind{MajorityThreshold, SupermajorityThreshold, NearUnanimityThreshold, UnanimityThreshold}
}

// ParseThresholdKind maps a name such as "supermajority" to its kind.
func ParseThresholdKind(name string) (ThresholdKind, error) {
	for k, n := range thresholdKindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown threshold kind %q", ErrInvalidSpecification, name)
}

// QuorumSpec is a quorum kind together with its parameter. NumPresent and
// NumVoting carry a member count, ProportionVoting carries a proportion.
// The zero value is not a valid specification.
type QuorumSpec struct {
	kind       QuorumKind
	count      int
	proportion *big.Rat
}

// NumPresent requires at least n members present and at least one voting.
func NumPresent(n int) QuorumSpec {
	return QuorumSpec{kind: NumPresentQuorum, count: n}
}

// NumVoting requires at least n members that did not abstain.
func NumVoting(n int) QuorumSpec {
	return QuorumSpec{kind: NumVotingQuorum, count: n}
}

// ProportionVoting requires voting/present >= p. p is copied.
func ProportionVoting(p *big.Rat) QuorumSpec {
	return QuorumSpec{kind: ProportionVotingQuorum, proportion: copyRat(p)}
}

func (q QuorumSpec) Kind() QuorumKind { return q.kind }

// Count returns the member count of a NumPresent or NumVoting quorum.
func (q QuorumSpec) Count() int { return q.count }

// Proportion returns a copy of the proportion of a ProportionVoting quorum,
// or nil for the other kinds.
func (q QuorumSpec) Proportion() *big.Rat { return copyRat(q.proportion) }

func (q QuorumSpec) String() string {
	if q.kind == ProportionVotingQuorum {
		return fmt.Sprintf("%s(%s)", q.kind, ratString(q.proportion))
	}
	return fmt.Sprintf("%s(%d)", q.kind, q.count)
}

// ThresholdSpec is a threshold kind together with its optional parameter:
// T for Supermajority, C for NearUnanimity, nothing otherwise. The zero
// value is not a valid specification.
type ThresholdSpec struct {
	kind       ThresholdKind
	proportion *big.Rat
	complement int
}

func Majority() ThresholdSpec { return ThresholdSpec{kind: MajorityThreshold} }

// Supermajority requires votes >= t*population. t is copied.
func Supermajority(t *big.Rat) ThresholdSpec {
	return ThresholdSpec{kind: SupermajorityThreshold, proportion: copyRat(t)}
}

// NearUnanimity requires all but at most c of the population.
func NearUnanimity(c int) ThresholdSpec {
	return ThresholdSpec{kind: NearUnanimityThreshold, complement: c}
}

func Unanimity() ThresholdSpec { return ThresholdSpec{kind: UnanimityThreshold} }

func (t ThresholdSpec) Kind() ThresholdKind { return t.kind }

// Proportion returns a copy of T for Supermajority, nil otherwise.
func (t ThresholdSpec) Proportion() *big.Rat { return copyRat(t.proportion) }

// Complement returns C for NearUnanimity, 0 otherwise.
func (t ThresholdSpec) Complement() int { return t.complement }

func (t ThresholdSpec) String() string {
	switch t.kind {
	case SupermajorityThreshold:
		return fmt.Sprintf("%s(%s)", t.kind, ratString(t.proportion))
	case NearUnanimityThreshold:
		return fmt.Sprintf("%s(%d)", t.kind, t.complement)
	}
	return t.kind.String()
}

// ParseProportion parses an exact rational such as "2/3", "1" or "0.75".
// Only the syntax is checked; range checks happen in the evaluators.
func ParseProportion(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an exact rational", ErrTypeMismatch, s)
	}
	return r, nil
}

// Ratio is shorthand for big.NewRat.
func Ratio(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

func copyRat(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}
	return new(big.Rat).Set(r)
}

func ratString(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	return r.RatString()
}

// validate checks the kind and parameter of q.
func (q QuorumSpec) validate() error {
	switch q.kind {
	case NumPresentQuorum, NumVotingQuorum:
		return checkPositive(q.count, "quorum")
	case ProportionVotingQuorum:
		return checkProportion(q.proportion, "quorum")
	}
	return fmt.Errorf("%w: invalid quorum kind %s", ErrInvalidSpecification, q.kind)
}

// validate checks the kind and parameter of t against the population it
// will be applied to.
func (t ThresholdSpec) validate(population int) error {
	switch t.kind {
	case MajorityThreshold, UnanimityThreshold:
		return nil
	case SupermajorityThreshold:
		return checkSupermajority(t.proportion, "threshold T")
	case NearUnanimityThreshold:
		if err := checkNonNegative(t.complement, "threshold C"); err != nil {
			return err
		}
		// C >= P/2 written as C >= P-C; rejects every C when P is 0.
		if t.complement >= population-t.complement {
			return fmt.Errorf("%w: threshold C (%d) >= P/2 (%s)", ErrRangeViolation,
				t.complement, big.NewRat(int64(population), 2).RatString())
		}
		return nil
	}
	return fmt.Errorf("%w: invalid threshold kind %s", ErrInvalidSpecification, t.kind)
}
