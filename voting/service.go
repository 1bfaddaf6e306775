// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/votesys/ledger"
	"github.com/danielhkuo/votesys/models"
	"github.com/danielhkuo/votesys/store"
)

// Service enforces the voting invariants. Every mutation of a poll,
// including the ledger check and append that belong to a vote, runs
// inside a critical section keyed by poll id, so concurrent votes on
// the same poll serialize and the read-modify-write sequence cannot
// lose updates.
type Service struct {
	store  *store.Store
	ledger *ledger.Ledger

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

// New returns a service over the given store and ledger.
func New(st *store.Store, lg *ledger.Ledger) *Service {
	return &Service{
		store:  st,
		ledger: lg,
		locks:  map[int]*sync.Mutex{},
	}
}

// pollLock returns the mutex guarding the given poll id, creating it
// on first use. Locks are never discarded; the set of poll ids seen by
// one process is small.
func (s *Service) pollLock(id int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// ListIDs returns the ids of all stored polls, sorted ascending.
func (s *Service) ListIDs() ([]int, error) {
	return s.store.ListIDs()
}

// GetPoll loads a single poll.
func (s *Service) GetPoll(id int) (models.Poll, error) {
	return s.store.Read(id)
}

// CreatePoll persists a new poll owned by the caller. The id is
// caller-assigned and must not collide with an existing poll.
func (s *Service) CreatePoll(poll models.Poll, identity string) error {
	lock := s.pollLock(poll.ID)
	lock.Lock()
	defer lock.Unlock()

	ids, err := s.store.ListIDs()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == poll.ID {
			return fmt.Errorf("poll %d: %w", poll.ID, models.ErrDuplicatePollID)
		}
	}

	poll.Owner = identity
	if err := s.store.Write(poll); err != nil {
		return err
	}

	slog.Info("poll created", "poll_id", poll.ID, "owner", identity, "options", len(poll.Options))
	return nil
}

// CastVote applies a single vote: the caller must not own the poll,
// must not have voted on it before, and must name an existing option.
// On success exactly that option's count is incremented by one, the
// poll is persisted, and the vote is recorded in the ledger. The
// updated poll is returned.
func (s *Service) CastVote(pollID, optionID int, identity string) (models.Poll, error) {
	lock := s.pollLock(pollID)
	lock.Lock()
	defer lock.Unlock()

	poll, err := s.store.Read(pollID)
	if err != nil {
		return models.Poll{}, err
	}

	// Ownerless legacy polls skip the self-vote check.
	if poll.Owner != "" && poll.Owner == identity {
		return models.Poll{}, fmt.Errorf("poll %d: %w", pollID, models.ErrOwnVote)
	}

	voted, err := s.ledger.HasVoted(pollID, identity)
	if err != nil {
		return models.Poll{}, err
	}
	if voted {
		return models.Poll{}, fmt.Errorf("poll %d: %w", pollID, models.ErrAlreadyVoted)
	}

	opt := poll.Option(optionID)
	if opt == nil {
		return models.Poll{}, fmt.Errorf("poll %d option %d: %w", pollID, optionID, models.ErrOptionNotFound)
	}
	opt.Votes++

	if err := s.store.Write(poll); err != nil {
		return models.Poll{}, err
	}
	if err := s.ledger.Record(pollID, identity); err != nil {
		// The count is already persisted; surface the attribution
		// failure instead of hiding a half-applied vote.
		return models.Poll{}, err
	}

	slog.Info("vote recorded", "poll_id", pollID, "option_id", optionID, "identity", identity)
	return poll, nil
}

// DeletePoll removes the poll document and its voter ledger.
func (s *Service) DeletePoll(id int) error {
	lock := s.pollLock(id)
	lock.Lock()
	defer lock.Unlock()

	ids, err := s.store.ListIDs()
	if err != nil {
		return err
	}
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("poll %d: %w", id, models.ErrPollNotFound)
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}
	if err := s.ledger.Remove(id); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll_id", id)
	return nil
}
