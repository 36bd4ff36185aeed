// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the ordered participant list.

# Ingestion

Ingest splits raw text on commas, line feeds and carriage returns, trims
each token and appends one participant per non-empty token:

	added, err := r.Ingest("Alice, Bob\nCarol")
	// added: Alice, Bob, Carol (each with a fresh id)

Blank input returns ErrEmptyInput and leaves the roster unchanged. Ids are
random hex strings, unique within the roster.

# Duplicates

Names are not required to be unique. DuplicateNames reports names that
occur at least twice (exact, case-sensitive match). RemoveDuplicates keeps
the first occurrence of each name and is idempotent.

# Persistence

The roster is stored as a JSON array under SlotKey:

	err := r.Save(ctx, store)
	r, dropped, err := roster.Load(ctx, store)

A missing slot loads as an empty roster. Data that does not decode returns
ErrCorruptState so the caller can log it and start empty.

Roster is not safe for concurrent use; the session serializes access.
*/
package roster
