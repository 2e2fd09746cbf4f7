// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quorate API server.

quorate measures consensus: given aggregated counts from a vote (members
present, votes for each side or choice, the size of the body) and a choice
of quorum and threshold rules, it reports whether a decision was reached.
The rules live in package consensus; this server exposes them over HTTP.

# Starting the Server

Every setting has a default, so the server starts with no configuration:

	go run .

Or with flags:

	go run . -p 3318 -log-format json -metrics false

# Configuration

Settings are read from CLI flags, then environment variables, then an
optional dotenv file (-env-file, default ".env"):

  - PORT (-p): Server port (default: 3318)
  - LOG_FORMAT (-log-format): auto, text or json (default: auto, which
    picks text on a terminal and JSON otherwise)
  - CORS_ORIGIN (-cors-origin): Allowed origin (default: echo request origin)
  - METRICS (-metrics): Expose Prometheus metrics on /metrics (default: true)

# Architecture

  - consensus: Quorum, threshold and contest rules over exact rationals
  - handlers: HTTP request handlers and evaluation metrics
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - models: Request/response types and structural validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
