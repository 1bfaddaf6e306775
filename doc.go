// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the votesys API server.

Votesys is a small online voting service: users register and log in,
create polls, and cast one vote per poll; administrators manage users
and delete polls. Polls persist as individually schema-validated XML
documents on disk, with a JSON voter ledger per poll.

# Starting the Server

The server requires a JWT secret via environment variable or flag:

	JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -data ./data -jwt-secret ...

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): secret for access token signing

Optional settings:

  - PORT (-p): server port (default: 8000)
  - DATA_DIR (-data): poll data directory (default: ./data)
  - USERS_DB (-users-db): user registry path (default: <data>/users.db)
  - TOKEN_TTL_MIN (-token-ttl): token lifetime in minutes (default: 60)
  - ADMIN_USER / ADMIN_PASSWORD: bootstrap admin credentials

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, users)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth gates, CORS, logging, JSON helpers
  - models: domain types and sentinel errors
  - voting: the transactional voting core (per-poll critical sections)
  - store: XML poll documents on disk behind a file lock
  - ledger: per-poll voter records
  - pollxml: poll codec and schema validation
  - users: sqlite user registry with bcrypt hashes
  - auth: JWT issuance and verification
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
