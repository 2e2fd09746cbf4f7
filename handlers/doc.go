// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quorate API.

# Handler Types

EvaluationHandler serves every evaluation route. It is stateless apart
from its config:

	evaluationHandler := handlers.NewEvaluationHandler(cfg)

# Request Flow

Each handler follows the same steps:

 1. Decode the JSON body (unknown fields rejected). Failure is a 400.
 2. Validate structure with models.Validate: required fields, known kind
    names, a value for supermajority and near_unanimity. Failure is a 400.
 3. Convert kind names and values into consensus specs. Quorum counts and
    near-unanimity C are integers, proportions are exact rationals such
    as "2/3" or "0.75".
 4. Call the consensus package.

Any error from steps 3 and 4 carries a consensus error kind and is
returned as 422 Unprocessable Entity:

	{"error": "Unprocessable Entity",
	 "message": "logic violation: number voting (4) exceeds number present (3)",
	 "kind": "logic_violation"}

# Outcomes

	POST /questions         → {"outcome": "accepted", "description": "..."}
	POST /contests/n-of-m   → {"outcome": "consensus", "winners": [0, 2]}
	POST /contests/one-of-m → {"outcome": "consensus", "winner": 0}

winners and winner are omitted unless the outcome is consensus.

# Metrics

When metrics are enabled the handlers record:

  - quorate_evaluations_total{procedure, outcome}
  - quorate_evaluation_errors_total{procedure, kind}
  - quorate_evaluation_duration_seconds{procedure}
*/
package handlers
