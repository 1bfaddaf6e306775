// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler with start/completion slog entries
including method, path, and duration.

# Authentication Gates

RequireUser validates the Authorization bearer token and stores the
resulting claims in the request context; RequireAdmin additionally
checks the admin role:

	mux.HandleFunc("POST /api/polls",
		middleware.WithLogging(middleware.RequireUser(secret, h.CreatePoll)))

Handlers read the caller with:

	claims, ok := middleware.ClaimsFrom(r)

Missing or invalid tokens map to 401, insufficient role to 403.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody standardize the
request/response encoding used by every handler.

# CORS

CORS reflects the request origin and handles OPTIONS preflight.
*/
package middleware
