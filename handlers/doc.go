// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the votesys API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - PollHandler: poll listing, creation, voting, deletion
  - UserHandler: registration, login, admin user management

# Poll Routes

	GET    /api/polls           → ListPolls (ids, sorted ascending)
	GET    /api/polls/{id}      → GetPoll
	POST   /api/polls           → CreatePoll (authenticated)
	POST   /api/polls/{id}/vote → CastVote (authenticated)
	DELETE /api/polls/{id}      → DeletePoll (admin)

# User Routes

	POST   /api/register         → Register
	POST   /api/login            → Login (returns a bearer token)
	GET    /api/users            → ListUsers (admin)
	DELETE /api/users/{username} → DeleteUser (admin)

# Error Mapping

Domain errors translate to categorical HTTP outcomes: missing poll or
user → 404; duplicate poll id, unknown option, schema-rejected poll,
bad credentials → 400; self-vote and double-vote → 403; missing or
invalid token → 401 (middleware); everything else → 500 with an
slog.Error entry.
*/
package handlers
