// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the durable key-value slot behind the roster.

# Backends

  - SQLStore: kv_slot table in SQLite (default) or PostgreSQL
  - BadgerStore: embedded Badger directory
  - MemoryStore: process memory, used by tests and -t memory

All backends implement Store:

	store, err := storage.Open(cfg)
	defer store.Close()

	err = store.Put(ctx, "hr-toolkit-names", data)
	data, err := store.Get(ctx, "hr-toolkit-names")

Get returns ErrNotFound for a key that was never written.
*/
package storage
