// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/danielhkuo/votesys/models"
	"github.com/danielhkuo/votesys/pollxml"
)

const (
	pollPrefix = "poll_"
	pollSuffix = ".xml"
	lockName   = "data.lock"
)

// Store owns the on-disk directory of poll documents. All raw file
// reads and writes are serialized by a single named file lock; the
// lock is held only around the byte I/O, never around encoding or
// validation.
type Store struct {
	dir    string
	schema *pollxml.Schema
	lock   *flock.Flock
}

// New creates the data directory if needed and returns a store over it.
func New(dir string, schema *pollxml.Schema) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dir:    dir,
		schema: schema,
		lock:   flock.New(filepath.Join(dir, lockName)),
	}, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) pollPath(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d%s", pollPrefix, id, pollSuffix))
}

// ListIDs scans the data directory for poll documents and returns
// their ids sorted ascending. Filenames that do not match the
// poll_<id>.xml pattern are skipped.
func (s *Store) ListIDs() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan data directory: %w", err)
	}

	ids := []int{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, pollPrefix) || !strings.HasSuffix(name, pollSuffix) {
			continue
		}
		id, err := strconv.Atoi(name[len(pollPrefix) : len(name)-len(pollSuffix)])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// Read loads the poll with the given id. Validation on read is
// advisory: a document that fails the schema is logged and still
// decoded leniently, so one malformed historical record cannot take
// reads down.
func (s *Store) Read(id int) (models.Poll, error) {
	path := s.pollPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return models.Poll{}, fmt.Errorf("poll %d: %w", id, models.ErrPollNotFound)
		}
		return models.Poll{}, fmt.Errorf("failed to stat poll %d: %w", id, err)
	}

	data, err := s.readFile(path)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to read poll %d: %w", id, err)
	}

	if err := s.schema.Validate(data); err != nil {
		slog.Warn("poll document failed validation, decoding anyway", "poll_id", id, "error", err)
	}

	poll, err := pollxml.Decode(data)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to decode poll %d: %w", id, err)
	}
	return poll, nil
}

// Write persists the poll, replacing any prior document for its id.
// Validation on write is mandatory: a document that fails the schema
// is never persisted.
func (s *Store) Write(poll models.Poll) error {
	data, err := pollxml.Encode(poll)
	if err != nil {
		return err
	}
	if err := s.schema.Validate(data); err != nil {
		return fmt.Errorf("refusing to persist poll %d: %w", poll.ID, err)
	}

	if err := s.writeFile(s.pollPath(poll.ID), data); err != nil {
		return fmt.Errorf("failed to write poll %d: %w", poll.ID, err)
	}
	return nil
}

// Delete removes the poll document. Deleting an id that has no
// document is not an error.
func (s *Store) Delete(id int) error {
	if err := s.remove(s.pollPath(id)); err != nil {
		return fmt.Errorf("failed to delete poll %d: %w", id, err)
	}
	return nil
}

func (s *Store) readFile(path string) ([]byte, error) {
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire store lock: %w", err)
	}
	defer s.lock.Unlock()
	return os.ReadFile(path)
}

func (s *Store) writeFile(path string, data []byte) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire store lock: %w", err)
	}
	defer s.lock.Unlock()
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) remove(path string) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire store lock: %w", err)
	}
	defer s.lock.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
