package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DataDir         string
	UsersDBPath     string
	JWTSecret       string
	TokenTTLMinutes int
	AdminUser       string
	AdminPassword   string
}

// ParseFlags validates flags and applies environment fallbacks.
// A .env file in the working directory is loaded first; real
// environment variables and flags win over it.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("votesys", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataDir, "data", "", "Poll data directory")
	fs.StringVar(&cfg.UsersDBPath, "users-db", "", "User registry database path")
	fs.IntVar(&cfg.TokenTTLMinutes, "token-ttl", 0, "Access token lifetime in minutes")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Bootstrap admin username")
	fs.StringVar(&cfg.AdminPassword, "admin-pass", "", "Bootstrap admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.UsersDBPath == "" {
		cfg.UsersDBPath = os.Getenv("USERS_DB")
	}
	if cfg.UsersDBPath == "" {
		cfg.UsersDBPath = filepath.Join(cfg.DataDir, "users.db")
	}
	if cfg.TokenTTLMinutes == 0 {
		if ttlStr := os.Getenv("TOKEN_TTL_MIN"); ttlStr != "" {
			ttl, err := strconv.Atoi(ttlStr)
			if err != nil || ttl <= 0 {
				return Config{}, errors.New("invalid TOKEN_TTL_MIN env variable")
			}
			cfg.TokenTTLMinutes = ttl
		} else {
			cfg.TokenTTLMinutes = 60
		}
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "secret"
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	return cfg, nil
}
