// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package users is the username-keyed user registry.

Accounts live in an embedded sqlite database (pure-Go driver, single
file next to the poll data), with bcrypt password hashes and a role of
either "user" or "admin".

# Operations

	reg, err := users.Open("data/users.db")
	err = reg.Register("bob", "bob@example.com", "pw", "")
	user, err := reg.Authenticate("bob", "pw")
	list, err := reg.List()         // hashes excluded
	err = reg.Delete("bob")

# Admin Bootstrap

EnsureAdmin is an explicit startup step, invoked once from main:

	err = reg.EnsureAdmin(cfg.AdminUser, cfg.AdminPassword)

It creates the configured admin account when missing, restores the
admin role if it was changed, and rehashes when the configured
password differs from the stored hash. Nothing in this package runs as
an import side effect.
*/
package users
