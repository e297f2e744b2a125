// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mlevkin/launchcopy/internal/logger"
)

// KVFile is a local key-value document store: one JSON file mapping string
// keys to raw JSON values. It ports the browser local-storage model the
// product was built on — every operation is a read-modify-write of the whole
// blob, atomic only within a single process. Two processes sharing the file
// can clobber each other; that is the accepted trade-off of the single-session
// deployment this backend serves.
type KVFile struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewKVFile returns a store persisting to the given file path. The file is
// created lazily on first write.
func NewKVFile(path string, log *logger.Logger) *KVFile {
	log.Debug().Str("path", path).Msg("creating key-value file store")
	return &KVFile{
		path:   path,
		logger: log,
	}
}

// Get returns the raw JSON value stored under key. The second return value
// reports whether the key was present.
func (s *KVFile) Get(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}

	value, ok := doc[key]
	return value, ok, nil
}

// Set stores the raw JSON value under key, replacing any previous value.
func (s *KVFile) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc[key] = value
	return s.save(doc)
}

// Delete removes the key. Deleting an absent key is a no-op.
func (s *KVFile) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := doc[key]; !ok {
		return nil
	}

	delete(doc, key)
	return s.save(doc)
}

// load reads the whole document. A missing file yields an empty document; a
// file that cannot be read or parsed yields ErrStorageUnavailable.
func (s *KVFile) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStorageUnavailable, s.path, err)
	}

	if len(data) == 0 {
		return make(map[string]json.RawMessage), nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed store file %s: %w", ErrStorageUnavailable, s.path, err)
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}

	return doc, nil
}

// save writes the whole document through a temp file and rename so a crash
// mid-write never leaves a half-written store behind.
func (s *KVFile) save(doc map[string]json.RawMessage) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding store document: %w", ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %w", ErrStorageUnavailable, dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %w", ErrStorageUnavailable, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: closing %s: %w", ErrStorageUnavailable, tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replacing %s: %w", ErrStorageUnavailable, s.path, err)
	}

	return nil
}
