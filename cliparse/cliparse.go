// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Supported storage backends for the roster slot
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseBadger   = "badger"
	DatabaseMemory   = "memory"
)

const (
	defaultPort           = 3318
	defaultSQLitePath     = "hr-toolkit.db"
	defaultBadgerPath     = "hr-toolkit-data"
	defaultSpinTicks      = 30
	defaultMaxUploadBytes = 1 << 20
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AdminKey       string
	SpinTicks      int
	MaxUploadBytes int64
}

// ParseFlags parses CLI flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("hr-toolkit", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or data directory")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres, badger or memory)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key for destructive roster operations (prefer env)")

	fs.IntVar(&cfg.SpinTicks, "spin-ticks", -1, "Number of name reveals before a winner lands (0 disables)")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", 0, "Maximum roster upload size in bytes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := intFromEnv("PORT", defaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLitePath
		}
	case DatabaseBadger:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultBadgerPath
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	if cfg.SpinTicks < 0 {
		ticks, err := intFromEnv("SPIN_TICKS", defaultSpinTicks)
		if err != nil {
			return Config{}, err
		}
		if ticks < 0 {
			return Config{}, errors.New("SPIN_TICKS must not be negative")
		}
		cfg.SpinTicks = ticks
	}

	if cfg.MaxUploadBytes <= 0 {
		size, err := intFromEnv("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
		if err != nil {
			return Config{}, err
		}
		if size <= 0 {
			return Config{}, errors.New("MAX_UPLOAD_BYTES must be positive")
		}
		cfg.MaxUploadBytes = int64(size)
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
