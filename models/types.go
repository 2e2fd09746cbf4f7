package models

// Quorum kind names accepted in requests
const (
	QuorumNumPresent       = "num_present"
	QuorumNumVoting        = "num_voting"
	QuorumProportionVoting = "proportion_voting"
)

// Threshold kind names accepted in requests
const (
	ThresholdMajority      = "majority"
	ThresholdSupermajority = "supermajority"
	ThresholdNearUnanimity = "near_unanimity"
	ThresholdUnanimity     = "unanimity"
)

// Specification types

// Value is an integer count ("33") for num_present and num_voting, or an
// exact rational ("1/3") for proportion_voting
type QuorumSpec struct {
	Kind  string `json:"kind" validate:"required,oneof=num_present num_voting proportion_voting"`
	Value string `json:"value" validate:"required"`
}

// Value is an exact rational T for supermajority, an integer C for
// near_unanimity, and ignored otherwise
type ThresholdSpec struct {
	Kind  string `json:"kind" validate:"required,oneof=majority supermajority near_unanimity unanimity"`
	Value string `json:"value,omitempty" validate:"required_if=Kind supermajority,required_if=Kind near_unanimity"`
}

// Request types
//
// Counts are pointers so a missing field is told apart from an explicit 0.
// Range checks on the counts belong to the consensus package.

type QuorateRequest struct {
	Quorum  QuorumSpec `json:"quorum" validate:"required"`
	Present *int       `json:"present" validate:"required"`
	Voting  *int       `json:"voting" validate:"required"`
}

type ThresholdRequest struct {
	Threshold  ThresholdSpec `json:"threshold" validate:"required"`
	Votes      *int          `json:"votes" validate:"required"`
	Population *int          `json:"population" validate:"required"`
}

type SimpleQuestionRequest struct {
	Quorum    *int   `json:"quorum" validate:"required"`
	VotesY    *int   `json:"votes_y" validate:"required"`
	VotesN    *int   `json:"votes_n" validate:"required"`
	Threshold string `json:"threshold" validate:"required"`
}

type QuestionRequest struct {
	Quorum     QuorumSpec    `json:"quorum" validate:"required"`
	Present    *int          `json:"present" validate:"required"`
	VotesY     *int          `json:"votes_y" validate:"required"`
	VotesN     *int          `json:"votes_n" validate:"required"`
	Population *int          `json:"population" validate:"required"`
	Threshold  ThresholdSpec `json:"threshold" validate:"required"`
}

type NOfMRequest struct {
	Quorum     QuorumSpec    `json:"quorum" validate:"required"`
	Present    *int          `json:"present" validate:"required"`
	Voting     *int          `json:"voting" validate:"required"`
	Votes      []int         `json:"votes" validate:"required"`
	Population *int          `json:"population" validate:"required"`
	Threshold  ThresholdSpec `json:"threshold" validate:"required"`
}

type OneOfMRequest struct {
	Quorum     QuorumSpec    `json:"quorum" validate:"required"`
	Present    *int          `json:"present" validate:"required"`
	Votes      []int         `json:"votes" validate:"required"`
	Population *int          `json:"population" validate:"required"`
	Threshold  ThresholdSpec `json:"threshold" validate:"required"`
}

// Response types

type QuorateResponse struct {
	Quorate bool `json:"quorate"`
}

type ThresholdResponse struct {
	MeetsThreshold bool `json:"meets_threshold"`
}

type QuestionResponse struct {
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
}

// Winners is set only when Outcome is "consensus"
type NOfMResponse struct {
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
	Winners     []int  `json:"winners,omitempty"`
}

// Winner is set only when Outcome is "consensus"
type OneOfMResponse struct {
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
	Winner      *int   `json:"winner,omitempty"`
}

type KindInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type KindsResponse struct {
	Version         string     `json:"version"`
	QuorumKinds     []KindInfo `json:"quorum_kinds"`
	ThresholdKinds  []KindInfo `json:"threshold_kinds"`
	Outcomes        []KindInfo `json:"outcomes"`
	PopulationBases []KindInfo `json:"population_bases"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}
