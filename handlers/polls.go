// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/votesys/middleware"
	"github.com/danielhkuo/votesys/models"
	"github.com/danielhkuo/votesys/pollxml"
	"github.com/danielhkuo/votesys/voting"
)

type PollHandler struct {
	svc *voting.Service
}

func NewPollHandler(svc *voting.Service) *PollHandler {
	return &PollHandler{svc: svc}
}

func pollIDFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.ListIDs()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ids)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, ok := pollIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be numeric")
		return
	}

	poll, err := h.svc.GetPoll(id)
	if errors.Is(err, models.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to read poll", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Bearer token required")
		return
	}

	var poll models.Poll
	if err := middleware.ParseJSONBody(r, &poll); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.svc.CreatePoll(poll, claims.Identity)
	if errors.Is(err, models.ErrDuplicatePollID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll id already exists")
		return
	}
	var schemaErr *pollxml.SchemaError
	if errors.As(err, &schemaErr) {
		// The caller supplied a poll the schema rejects (no options,
		// duplicate option ids).
		middleware.ErrorResponse(w, http.StatusBadRequest, schemaErr.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	created, err := h.svc.GetPoll(poll.ID)
	if err != nil {
		slog.Error("failed to read back created poll", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// CastVote handles POST /api/polls/{id}/vote
func (h *PollHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Bearer token required")
		return
	}

	id, ok := pollIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be numeric")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.svc.CastVote(id, req.OptionID, claims.Identity)
	switch {
	case errors.Is(err, models.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case errors.Is(err, models.ErrOwnVote):
		middleware.ErrorResponse(w, http.StatusForbidden, "Cannot vote on your own poll")
		return
	case errors.Is(err, models.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusForbidden, "Already voted on this poll")
		return
	case errors.Is(err, models.ErrOptionNotFound):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Option not found")
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "poll_id", id, "option_id", req.OptionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /api/polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	id, ok := pollIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be numeric")
		return
	}

	err := h.svc.DeletePoll(id)
	if errors.Is(err, models.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete poll", "error", err, "poll_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
