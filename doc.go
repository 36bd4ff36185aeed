// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the HR toolkit API server.

The HR toolkit keeps a roster of participant names and offers two things
on top of it: a lucky draw that picks one winner at a time, with or
without repeat winners, and a random grouping of the roster into
fixed-size groups that can be exported as CSV.

# Starting the Server

With no configuration the server listens on 3318 and keeps the roster in
a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t badger -d ./data

A .env file in the working directory is loaded first when present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres, badger or memory (default: sqlite)
  - DATABASE_URL (-d): SQLite file, PostgreSQL connection string or Badger
    directory (default depends on the type; required for postgres)
  - ADMIN_KEY (-admin-key): Required on destructive roster routes when set
  - SPIN_TICKS (-spin-ticks): Names revealed before a winner lands
    (default: 30, 0 disables the countdown)
  - MAX_UPLOAD_BYTES (-max-upload): Roster upload limit (default: 1 MiB)

# Architecture

  - session: Roster, draw engine and latest groups behind one lock
  - roster: Name parsing, ids, duplicates and persistence
  - draw: Draw engine state machine and countdown
  - grouping: Group generation, CSV export and print table
  - random: Injectable random source and Fisher-Yates shuffle
  - storage: Key-value slot over SQLite, PostgreSQL, Badger or memory
  - handlers, router, middleware: HTTP layer
  - models: Domain, request and response types
  - auth: Ids and admin key checks
  - db: SQL connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
