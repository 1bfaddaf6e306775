package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/votesys/cliparse"
	"github.com/danielhkuo/votesys/ledger"
	"github.com/danielhkuo/votesys/pollxml"
	"github.com/danielhkuo/votesys/router"
	"github.com/danielhkuo/votesys/store"
	"github.com/danielhkuo/votesys/users"
	"github.com/danielhkuo/votesys/voting"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if cfg.AdminPassword == "secret" {
		slog.Warn("running with the default admin password; set ADMIN_PASSWORD")
	}

	// Poll storage
	schema := pollxml.NewSchema()
	st, err := store.New(cfg.DataDir, schema)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	lg := ledger.New(cfg.DataDir)
	svc := voting.New(st, lg)
	slog.Info("Poll store ready", "dir", cfg.DataDir)

	// User registry
	registry, err := users.Open(cfg.UsersDBPath)
	if err != nil {
		slog.Error("user registry initialization failed", "error", err)
		os.Exit(1)
	}
	defer registry.Close()

	// Bootstrap the admin account explicitly, once, at startup
	if err := registry.EnsureAdmin(cfg.AdminUser, cfg.AdminPassword); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(svc, registry, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
