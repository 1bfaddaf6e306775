// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Request types

type VoteRequest struct {
	OptionID int `json:"option_id"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Domain types

type Poll struct {
	ID       int      `json:"id"`
	Owner    string   `json:"owner,omitempty"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Option struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Option returns the option with the given id, or nil if the poll has
// no such option.
func (p *Poll) Option(id int) *Option {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i]
		}
	}
	return nil
}

type User struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"` // Never expose in JSON
	Role           string `json:"role"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// PublicUser is the admin-facing view of a user, without the hash.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
