// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

var (
	ErrPollNotFound    = errors.New("poll not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrDuplicatePollID = errors.New("poll id already exists")
	ErrOwnVote         = errors.New("cannot vote on own poll")
	ErrAlreadyVoted    = errors.New("already voted")

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
)
