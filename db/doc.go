// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the schema.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open("sqlite", "hr-toolkit.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses the pure-Go modernc.org/sqlite driver, PostgreSQL uses lib/pq.
SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_slot: key, value (serialized JSON), updated_at

The roster is stored as one row keyed "hr-toolkit-names".
*/
package db
