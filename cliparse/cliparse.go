package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL  = "http://127.0.0.1:5000/api"
	DefaultEnvFile  = ".env"
	DefaultLogLevel = "warn"
)

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	JournalURL      string
	JournalType     string
	FingerprintSalt string
	RedactComments  bool
	NoColor         bool
	LogLevel        string
	EnvFile         string
}

// JournalEnabled reports whether attempts should be recorded locally
func (c Config) JournalEnabled() bool {
	return c.JournalURL != ""
}

// SlogLevel maps LogLevel to a slog.Level
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// LoadEnvFile loads KEY=value pairs from path into the environment.
// Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeout string
	var redact, noColor bool

	flags := flag.NewFlagSet("ballot-client", flag.ContinueOnError)

	// Service
	flags.StringVar(&cfg.BaseURL, "u", "", "Tallying service base URL")
	flags.StringVar(&timeout, "timeout", "", "HTTP timeout, e.g. 10s (default none)")

	// Journal
	flags.StringVar(&cfg.JournalURL, "j", "", "Journal database URL (disabled if empty)")
	flags.StringVar(&cfg.JournalType, "t", "", "Journal database type (sqlite or postgres)")
	flags.StringVar(&cfg.FingerprintSalt, "fingerprint-salt", "", "Fingerprint salt (prefer env)")

	// Behaviour
	flags.BoolVar(&redact, "redact-comments", false, "Redact personal information from comments before sending")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Env file to load before reading variables")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BALLOT_API_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, errors.New("invalid base URL: must be an absolute http(s) URL")
	}

	if timeout == "" {
		timeout = os.Getenv("BALLOT_TIMEOUT")
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d < 0 {
			return Config{}, errors.New("invalid timeout: use a duration like 10s")
		}
		cfg.Timeout = d
	}

	if cfg.JournalURL == "" {
		cfg.JournalURL = os.Getenv("JOURNAL_URL")
	}
	if cfg.JournalType == "" {
		cfg.JournalType = os.Getenv("JOURNAL_TYPE")
		if cfg.JournalType == "" {
			cfg.JournalType = "sqlite"
		}
	}
	if cfg.JournalType != "sqlite" && cfg.JournalType != "postgres" {
		return Config{}, errors.New("journal type must be sqlite or postgres")
	}

	if cfg.FingerprintSalt == "" {
		cfg.FingerprintSalt = os.Getenv("FINGERPRINT_SALT")
	}
	// Journal fingerprints must be comparable across runs
	if cfg.JournalEnabled() && cfg.FingerprintSalt == "" {
		return Config{}, errors.New("FINGERPRINT_SALT required when a journal is configured")
	}

	cfg.RedactComments = redact || envBool("REDACT_COMMENTS")
	cfg.NoColor = noColor || os.Getenv("NO_COLOR") != ""

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = DefaultLogLevel
		}
	}

	return cfg, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
