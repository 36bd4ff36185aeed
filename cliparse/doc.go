// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, badger or memory (default: sqlite)
  - DatabaseURL: SQLite file, PostgreSQL connection string or Badger directory
  - AdminKey: Shared key for destructive roster operations (optional)
  - SpinTicks: Name reveals before a winner lands (default: 30, 0 disables)
  - MaxUploadBytes: Upper bound for uploaded roster files (default: 1 MiB)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin-key    Admin key
	-spin-ticks   Countdown length
	-max-upload   Upload size limit

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	ADMIN_KEY        → -admin-key
	SPIN_TICKS       → -spin-ticks
	MAX_UPLOAD_BYTES → -max-upload

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing, when one exists.

# Validation

ParseFlags returns an error when:

  - the database type is unknown
  - postgres is selected without a DATABASE_URL
  - a numeric env variable does not parse
*/
package cliparse
