// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import "fmt"

// PopulationBasis names one of the four ways of setting the effective
// population size against which a threshold is measured.
type PopulationBasis int

const (
	// NominalSize is P(1), the nominal size of the voting body.
	NominalSize PopulationBasis = iota + 1
	// CurrentSize is P(2), the size of the body with vacant positions excluded.
	CurrentSize
	// PresentCount is P(3), the number of members present at the time of voting.
	PresentCount
	// VotingCount is P(4), the number of members that did not abstain.
	VotingCount
)

var populationBasisNames = map[PopulationBasis]string{
	NominalSize:  "nominal",
	CurrentSize:  "current",
	PresentCount: "present",
	VotingCount:  "voting",
}

var populationBasisDescriptions = map[PopulationBasis]string{
	NominalSize:  "The nominal size of the voting body",
	CurrentSize:  "The current size of the voting body with vacant positions excluded",
	PresentCount: "The number of members present at the time of voting",
	VotingCount:  "The number of members that did not abstain",
}

func (b PopulationBasis) String() string {
	if name, ok := populationBasisNames[b]; ok {
		return name
	}
	return fmt.Sprintf("PopulationBasis(%d)", int(b))
}

func (b PopulationBasis) Description() string {
	return populationBasisDescriptions[b]
}

// PopulationBases lists the bases from P(1) to P(4).
func PopulationBases() []PopulationBasis {
	return []PopulationBasis{NominalSize, CurrentSize, PresentCount, VotingCount}
}

// EffectivePopulation picks the population for the given basis from the
// nominal and current body sizes and the tally's counts. The sizes must
// satisfy nominal >= current >= present >= voting.
func (t Tally) EffectivePopulation(basis PopulationBasis, nominal, current int) (int, error) {
	if err := checkAll(
		checkNonNegative(nominal, "nominal"),
		checkNonNegative(current, "current"),
		checkNonNegative(t.Present, "present"),
		checkNonNegative(t.Voting, "voting"),
	); err != nil {
		return 0, err
	}
	switch {
	case current > nominal:
		return 0, fmt.Errorf("%w: current size (%d) exceeds nominal size (%d)", ErrLogicViolation, current, nominal)
	case t.Present > current:
		return 0, fmt.Errorf("%w: number present (%d) exceeds current size (%d)", ErrLogicViolation, t.Present, current)
	case t.Voting > t.Present:
		return 0, fmt.Errorf("%w: number voting (%d) exceeds number present (%d)", ErrLogicViolation, t.Voting, t.Present)
	}

	switch basis {
	case NominalSize:
		return nominal, nil
	case CurrentSize:
		return current, nil
	case PresentCount:
		return t.Present, nil
	case VotingCount:
		return t.Voting, nil
	}
	return 0, fmt.Errorf("%w: invalid population basis %s", ErrInvalidSpecification, basis)
}
