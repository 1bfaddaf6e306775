// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package users

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/votesys/models"
)

// Registry is the username-keyed user store, backed by an embedded
// sqlite database.
type Registry struct {
	db *sql.DB
}

// Open opens (creating if needed) the registry database at path and
// ensures the schema exists.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open user database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("user database ping failed: %w", err)
	}
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return &Registry{db: db}, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Register creates a new user. The role defaults to "user" and the
// password is stored as a bcrypt hash.
func (r *Registry) Register(username, email, password, role string) error {
	role = strings.ToLower(role)
	if role == "" {
		role = models.RoleUser
	}

	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM account WHERE username = ?)`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query account: %w", err)
	}
	if exists {
		return fmt.Errorf("user %q: %w", username, models.ErrUsernameTaken)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO account (username, email, password_hash, role, email_confirmed)
		VALUES (?, ?, ?, ?, 1)
	`, username, email, hash, role)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	slog.Info("user registered", "username", username, "role", role)
	return nil
}

// Authenticate verifies the credentials and returns the stored user.
// Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so callers cannot probe for accounts.
func (r *Registry) Authenticate(username, password string) (models.User, error) {
	user, err := r.get(username)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return models.User{}, models.ErrEmailNotConfirmed
	}
	return user, nil
}

// List returns all users without their password hashes.
func (r *Registry) List() ([]models.PublicUser, error) {
	rows, err := r.db.Query(`SELECT username, email, role FROM account ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.Username, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete removes a user by username.
func (r *Registry) Delete(username string) error {
	res, err := r.db.Exec(`DELETE FROM account WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", username, models.ErrUserNotFound)
	}

	slog.Info("user deleted", "username", username)
	return nil
}

// EnsureAdmin synchronizes the configured administrator account. It is
// called once by the process entry point at startup: a missing admin
// is created, a demoted one is re-promoted, and a changed password is
// rehashed.
func (r *Registry) EnsureAdmin(username, password string) error {
	user, err := r.get(username)
	if err == sql.ErrNoRows {
		hash, err := hashPassword(password)
		if err != nil {
			return err
		}
		_, err = r.db.Exec(`
			INSERT INTO account (username, email, password_hash, role, email_confirmed)
			VALUES (?, ?, ?, 'admin', 1)
		`, username, username+"@example.com", hash)
		if err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		slog.Info("admin account created", "username", username)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query admin account: %w", err)
	}

	role := user.Role
	hash := user.PasswordHash
	if role != models.RoleAdmin {
		role = models.RoleAdmin
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		hash, err = hashPassword(password)
		if err != nil {
			return err
		}
	}
	if role == user.Role && hash == user.PasswordHash {
		return nil
	}

	_, err = r.db.Exec(`UPDATE account SET role = ?, password_hash = ? WHERE username = ?`,
		role, hash, username)
	if err != nil {
		return fmt.Errorf("failed to update admin account: %w", err)
	}
	slog.Info("admin account synchronized", "username", username)
	return nil
}

func (r *Registry) get(username string) (models.User, error) {
	var u models.User
	var confirmed int
	err := r.db.QueryRow(`
		SELECT username, email, password_hash, role, email_confirmed
		FROM account WHERE username = ?
	`, username).Scan(&u.Username, &u.Email, &u.PasswordHash, &u.Role, &confirmed)
	if err != nil {
		return models.User{}, err
	}
	u.EmailConfirmed = confirmed != 0
	return u, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
