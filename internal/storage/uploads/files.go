// Package uploads stores image binaries under a single directory and hands
// back the relative URLs they are served under.
package uploads

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotelier/internal/domain"
)

type Store struct {
	dir       string
	urlPrefix string // e.g. /uploads/images
}

func New(dir, urlPrefix string) *Store {
	return &Store{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Save streams content to disk under a generated name:
// <field>-<unix-ms>-<random>.<ext>, extension lowercased.
func (s *Store) Save(field, originalName string, content io.Reader) (domain.StoredImage, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.StoredImage{}, fmt.Errorf("create uploads dir: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return domain.StoredImage{}, fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return domain.StoredImage{}, fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return domain.StoredImage{}, fmt.Errorf("close %s: %w", name, err)
	}
	return domain.StoredImage{Name: name, URL: s.urlPrefix + "/" + name}, nil
}

func (s *Store) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
