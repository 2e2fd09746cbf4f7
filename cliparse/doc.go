// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - LogFormat: auto, text or json (default: auto)
  - CORSOrigin: Allowed origin (default: echo the request's Origin)
  - Metrics: Serve Prometheus metrics on /metrics (default: true)
  - EnvFile: Dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-p            Server port
	-log-format   Log format
	-cors-origin  Allowed CORS origin
	-metrics      true or false
	-env-file     Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT        → -p
	LOG_FORMAT  → -log-format
	CORS_ORIGIN → -cors-origin
	METRICS     → -metrics

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
dotenv file is not an error.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is outside 1-65535
  - LOG_FORMAT is not auto, text or json
  - METRICS is not a boolean
  - the dotenv file exists but cannot be parsed
*/
package cliparse
