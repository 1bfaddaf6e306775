// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Ledger tracks, per poll, which identities have already voted. Each
// poll's record is a JSON array of identity strings in
// poll_<id>_voters.json, created lazily on the first vote. The ledger
// performs no locking of its own; the voting service serializes all
// mutations for a given poll.
type Ledger struct {
	dir string
}

// New returns a ledger persisting into dir.
func New(dir string) *Ledger {
	return &Ledger{dir: dir}
}

func (l *Ledger) path(pollID int) string {
	return filepath.Join(l.dir, fmt.Sprintf("poll_%d_voters.json", pollID))
}

// Voters returns the identities recorded for the poll. A missing
// ledger file is an empty set.
func (l *Ledger) Voters(pollID int) ([]string, error) {
	data, err := os.ReadFile(l.path(pollID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read voter ledger for poll %d: %w", pollID, err)
	}

	var voters []string
	if err := json.Unmarshal(data, &voters); err != nil {
		return nil, fmt.Errorf("failed to parse voter ledger for poll %d: %w", pollID, err)
	}
	return voters, nil
}

// HasVoted reports whether the identity already appears in the poll's
// ledger.
func (l *Ledger) HasVoted(pollID int, identity string) (bool, error) {
	voters, err := l.Voters(pollID)
	if err != nil {
		return false, err
	}
	for _, v := range voters {
		if v == identity {
			return true, nil
		}
	}
	return false, nil
}

// Record appends the identity to the poll's ledger, creating the file
// on first use.
func (l *Ledger) Record(pollID int, identity string) error {
	voters, err := l.Voters(pollID)
	if err != nil {
		return err
	}
	voters = append(voters, identity)

	data, err := json.MarshalIndent(voters, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode voter ledger for poll %d: %w", pollID, err)
	}
	if err := os.WriteFile(l.path(pollID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write voter ledger for poll %d: %w", pollID, err)
	}
	return nil
}

// Remove deletes the poll's ledger file. Removing a ledger that was
// never created is not an error.
func (l *Ledger) Remove(pollID int) error {
	if err := os.Remove(l.path(pollID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove voter ledger for poll %d: %w", pollID, err)
	}
	return nil
}
