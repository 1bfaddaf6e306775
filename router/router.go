// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/votesys/cliparse"
	"github.com/danielhkuo/votesys/handlers"
	"github.com/danielhkuo/votesys/middleware"
	"github.com/danielhkuo/votesys/users"
	"github.com/danielhkuo/votesys/voting"
)

func NewRouter(svc *voting.Service, registry *users.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc)
	userHandler := handlers.NewUserHandler(registry, cfg)

	secret := cfg.JWTSecret

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls (reads are public, mutations authenticated)
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(middleware.RequireUser(secret, pollHandler.CreatePoll)))
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(middleware.RequireUser(secret, pollHandler.CastVote)))
	mux.HandleFunc("DELETE /api/polls/{id}", middleware.WithLogging(middleware.RequireAdmin(secret, pollHandler.DeletePoll)))

	// Users
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("GET /api/users", middleware.WithLogging(middleware.RequireAdmin(secret, userHandler.ListUsers)))
	mux.HandleFunc("DELETE /api/users/{username}", middleware.WithLogging(middleware.RequireAdmin(secret, userHandler.DeleteUser)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("votesys API v1"))
	})

	return mux
}
