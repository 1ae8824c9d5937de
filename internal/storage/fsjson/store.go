// Package fsjson persists hotels as one JSON document per id on the local
// filesystem. No locking is performed; concurrent saves of the same id are
// last-writer-wins.
package fsjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hotelier/internal/domain"
)

type Store struct{ dir string }

func New(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *Store) Save(_ context.Context, h domain.Hotel) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create hotels dir: %w", err)
	}
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hotel %s: %w", h.ID, err)
	}
	if err := os.WriteFile(s.path(h.ID), b, 0o644); err != nil {
		return fmt.Errorf("write hotel %s: %w", h.ID, err)
	}
	return nil
}

// Load maps every failure mode — missing file, unreadable file, corrupt
// JSON — to ErrNotFound; an id the caller cannot read is an id that does
// not exist.
func (s *Store) Load(_ context.Context, id string) (domain.Hotel, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return domain.Hotel{}, domain.ErrNotFound
	}
	b, err := os.ReadFile(s.path(id))
	if err != nil {
		return domain.Hotel{}, domain.ErrNotFound
	}
	var h domain.Hotel
	if err := json.Unmarshal(b, &h); err != nil {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}
