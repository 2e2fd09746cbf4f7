package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Log formats accepted by -log-format / LOG_FORMAT
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Port       int
	LogFormat  string
	CORSOrigin string
	Metrics    bool
	EnvFile    string
}

// ParseFlags parses CLI flags, falling back to environment variables
// (optionally loaded from a dotenv file) and then to defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var metrics string

	fs := flag.NewFlagSet("quorate", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text or json)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin (default: echo request origin)")
	fs.StringVar(&metrics, "metrics", "", "Expose Prometheus metrics on /metrics (true or false)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Dotenv file to load before reading the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// A missing dotenv file is fine; variables already set win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatAuto
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	if metrics == "" {
		metrics = os.Getenv("METRICS")
	}
	cfg.Metrics = true
	if metrics != "" {
		enabled, err := strconv.ParseBool(metrics)
		if err != nil {
			return Config{}, fmt.Errorf("invalid metrics setting %q", metrics)
		}
		cfg.Metrics = enabled
	}

	return cfg, nil
}
