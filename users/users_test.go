// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package users

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/votesys/models"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := Open(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("Failed to open registry: %v", err)
	}
	t.Cleanup(func() { reg.Close() })
	return reg
}

func TestRegisterAndAuthenticate(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.Register("bob", "bob@example.com", "hunter2", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := reg.Authenticate("bob", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Username != "bob" || user.Role != models.RoleUser {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.PasswordHash == "hunter2" {
		t.Error("Password stored in plaintext")
	}
}

func TestAuthenticateFailures(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.Register("bob", "bob@example.com", "hunter2", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "bob", "wrong"},
		{"unknown user", "nobody", "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Authenticate(tt.username, tt.password)
			if !errors.Is(err, models.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.Register("bob", "bob@example.com", "hunter2", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := reg.Register("bob", "other@example.com", "other", "")
	if !errors.Is(err, models.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
}

func TestListExcludesHashes(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.Register("bob", "bob@example.com", "hunter2", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register("carol", "carol@example.com", "pw", "admin"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	list, err := reg.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(list))
	}

	// Sorted by username
	if list[0].Username != "bob" || list[1].Username != "carol" {
		t.Errorf("Unexpected order: %+v", list)
	}
	if list[1].Role != models.RoleAdmin {
		t.Errorf("Expected carol to be admin, got %q", list[1].Role)
	}
}

func TestDelete(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.Register("bob", "bob@example.com", "hunter2", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := reg.Delete("bob"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := reg.Authenticate("bob", "hunter2"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("Expected deleted user to fail auth, got %v", err)
	}

	if err := reg.Delete("bob"); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestEnsureAdminCreates(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.EnsureAdmin("admin", "secret"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	user, err := reg.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("Expected admin role, got %q", user.Role)
	}
}

func TestEnsureAdminRepairsRole(t *testing.T) {
	reg := openTestRegistry(t)

	// Admin exists with a demoted role
	if err := reg.Register("admin", "admin@example.com", "secret", "user"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := reg.EnsureAdmin("admin", "secret"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	user, err := reg.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("Expected repaired admin role, got %q", user.Role)
	}
}

func TestEnsureAdminRehashesChangedPassword(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.EnsureAdmin("admin", "old-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	// Configured password changed; the stored hash must follow
	if err := reg.EnsureAdmin("admin", "new-password"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	if _, err := reg.Authenticate("admin", "new-password"); err != nil {
		t.Errorf("Expected new password to work, got %v", err)
	}
	if _, err := reg.Authenticate("admin", "old-password"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("Expected old password to be rejected, got %v", err)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	reg := openTestRegistry(t)

	if err := reg.EnsureAdmin("admin", "secret"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if err := reg.EnsureAdmin("admin", "secret"); err != nil {
		t.Fatalf("Second EnsureAdmin failed: %v", err)
	}

	list, err := reg.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected a single admin account, got %d", len(list))
	}
}
