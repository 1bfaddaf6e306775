// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAbsentLedgerIsEmpty(t *testing.T) {
	lg := New(t.TempDir())

	voted, err := lg.HasVoted(1, "alice")
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if voted {
		t.Error("Expected no vote recorded for a fresh poll")
	}
}

func TestRecordAndHasVoted(t *testing.T) {
	lg := New(t.TempDir())

	if err := lg.Record(1, "alice"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := lg.Record(1, "bob"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	for _, identity := range []string{"alice", "bob"} {
		voted, err := lg.HasVoted(1, identity)
		if err != nil {
			t.Fatalf("HasVoted failed: %v", err)
		}
		if !voted {
			t.Errorf("Expected %s to have voted", identity)
		}
	}

	voted, err := lg.HasVoted(1, "carol")
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if voted {
		t.Error("Expected carol to not have voted")
	}

	// A different poll has its own ledger
	voted, err = lg.HasVoted(2, "alice")
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if voted {
		t.Error("Expected alice to not have voted on poll 2")
	}
}

func TestLedgerPersists(t *testing.T) {
	dir := t.TempDir()

	lg := New(dir)
	if err := lg.Record(3, "alice"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// A fresh instance over the same directory sees the record
	reopened := New(dir)
	voters, err := reopened.Voters(3)
	if err != nil {
		t.Fatalf("Voters failed: %v", err)
	}
	if !reflect.DeepEqual(voters, []string{"alice"}) {
		t.Errorf("Expected [alice], got %v", voters)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	lg := New(dir)

	if err := lg.Record(4, "alice"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := lg.Remove(4); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "poll_4_voters.json")); !os.IsNotExist(err) {
		t.Error("Expected ledger file to be removed")
	}

	// Removing a ledger that never existed is not an error
	if err := lg.Remove(99); err != nil {
		t.Errorf("Remove of absent ledger failed: %v", err)
	}
}
