// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /roster", middleware.WithLogging(handler))

Every request gets an id, taken from an incoming X-Request-ID header or
generated with uuid. The id is echoed in the response header, attached to
the request context (see RequestID) and logged with the request start
(method, path, remote) and completion (duration_ms).

# Admin Key

Destructive routes are wrapped with RequireAdminKey:

	middleware.RequireAdminKey(cfg.AdminKey, rosterHandler.Clear)

When no admin key is configured every request passes. Otherwise the
X-Admin-Key header must match, or the request gets 401.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, X-Request-ID. Content-Disposition
is exposed so browsers can read the CSV export filename.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse and validate JSON request bodies:

	var req models.RepeatModeRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "allow is required")
		return
	}

Validation uses the go-playground/validator struct tags declared on the
request types in package models.
*/
package middleware
