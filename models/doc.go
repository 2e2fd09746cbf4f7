// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and specification types for the API.

# Specifications

Quorum and threshold specifications travel as a kind name plus a string
value, so proportions stay exact rationals:

	{"kind": "proportion_voting", "value": "1/3"}
	{"kind": "supermajority", "value": "2/3"}
	{"kind": "near_unanimity", "value": "1"}
	{"kind": "majority"}

# Request Types

  - QuorateRequest: quorum, present, voting
  - ThresholdRequest: threshold, votes, population
  - SimpleQuestionRequest: quorum, votes_y, votes_n, threshold
  - QuestionRequest: quorum, present, votes_y, votes_n, population, threshold
  - NOfMRequest: quorum, present, voting, votes, population, threshold
  - OneOfMRequest: quorum, present, votes, population, threshold

Count fields are pointers so that a missing field fails validation while an
explicit 0 passes through to the rules.

# Response Types

  - QuorateResponse: quorate
  - ThresholdResponse: meets_threshold
  - QuestionResponse: outcome, description
  - NOfMResponse: outcome, description, winners
  - OneOfMResponse: outcome, description, winner
  - KindsResponse: version and the known kinds with descriptions
  - ErrorResponse: error, message, kind

# Validation

Validate checks request structure with go-playground/validator:

	if err := models.Validate(&req); err != nil {
		// "quorum.kind must be one of [...]"
	}

It only checks presence of fields and kind names. Numeric rules (ranges,
voting vs. present, and so on) are left to the consensus package.

# Outcomes

	null_result      quorum not met
	negative_result  quorate but no consensus
	accepted         consensus for the proposition
	rejected         consensus against the proposition
	consensus        one or more choices passed
*/
package models
