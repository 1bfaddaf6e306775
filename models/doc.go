// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: option_id
  - RegisterRequest: username, email, password
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - LoginResponse: access_token, token_type
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: question with an ordered option list, optionally owned
  - Option: labeled choice with a vote counter
  - User: registry record (password hash never serialized)
  - PublicUser: user view returned to administrators

# Domain Errors

Sentinel errors shared across the storage and service layers, checked
with errors.Is at the HTTP boundary:

  - ErrPollNotFound, ErrOptionNotFound: missing records
  - ErrDuplicatePollID: poll creation with a taken id
  - ErrOwnVote, ErrAlreadyVoted: voting integrity violations
  - ErrUserNotFound, ErrUsernameTaken, ErrInvalidCredentials,
    ErrEmailNotConfirmed: user registry outcomes
*/
package models
