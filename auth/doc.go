// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ID generation and admin key checks.

# ID Generation

Random hex IDs for participants:

	id, err := auth.GenerateID(8)  // 16 hex characters

# Admin Keys

Destructive roster operations (clear, dedupe, demo load, remove) can be
protected with a shared admin key sent in the X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

When no key is configured every request passes. Keys are compared as
SHA-256 digests with hmac.Equal, so timing does not depend on where the
first mismatching byte is.
*/
package auth
