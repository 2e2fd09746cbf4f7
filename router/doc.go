// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quorate API.

Uses Go 1.22+ enhanced routing with method patterns:

	mux.HandleFunc("POST /questions", handler)

# Route Summary

Catalogue:

	GET /kinds               List quorum kinds, threshold kinds, outcomes

Building blocks:

	POST /quorate            Is quorum met?
	POST /threshold          Is the threshold of consensus met?

Questions:

	POST /questions/simple   Yes-or-no, supermajority of votes cast
	POST /questions          Yes-or-no, any quorum and threshold

Contests:

	POST /contests/n-of-m    Every choice that passes
	POST /contests/one-of-m  The single choice that passes

System:

	GET /health              Health check (returns "OK")
	GET /metrics             Prometheus metrics (when enabled)
	GET /                    API version

# Usage

	mux := router.NewRouter(cfg)
	http.ListenAndServe(":3318", middleware.CORS(cfg.CORSOrigin, mux))

All evaluation routes are wrapped with middleware.WithLogging.
*/
package router
