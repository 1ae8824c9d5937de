package domain

import (
	"context"
	"io"
)

// HotelStore persists one document per hotel, keyed by id. Save overwrites;
// Load returns ErrNotFound for unknown ids and unreadable documents. No
// locking: concurrent writers to one id are last-writer-wins.
type HotelStore interface {
	Save(ctx context.Context, h Hotel) error
	Load(ctx context.Context, id string) (Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// StoredImage is an uploaded binary that made it to disk.
type StoredImage struct {
	Name string // generated filename
	URL  string // public relative URL
}

// ImageFiles stores uploaded image binaries and removes them again on
// failed batches.
type ImageFiles interface {
	Save(field, originalName string, content io.Reader) (StoredImage, error)
	Remove(name string) error
}
