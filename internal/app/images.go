package app

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotelier/internal/adapters/observability"
	"hotelier/internal/domain"
)

// AllowedImageFormats is the extension allow-list for uploads,
// case-insensitive.
var AllowedImageFormats = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp",
	".tif", ".tiff", ".webp", ".heif", ".heic",
}

func allowedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AllowedImageFormats {
		if ext == a {
			return true
		}
	}
	return false
}

// Upload is one incoming multipart file.
type Upload struct {
	Name    string
	Content io.Reader
}

// ImageService validates and stores upload batches and appends the resulting
// URLs to the hotel document. The batch is all-or-nothing: one bad extension
// rejects everything, and any failure after files hit disk removes them
// again so no orphans accumulate.
type ImageService struct {
	store domain.HotelStore
	files domain.ImageFiles
	cache domain.Cache
}

func NewImageService(store domain.HotelStore, files domain.ImageFiles, cache domain.Cache) *ImageService {
	return &ImageService{store: store, files: files, cache: cache}
}

// UploadImages stores the batch for hotelID and returns the new URLs in
// input order. Failure modes: *domain.InvalidFormatError on a disallowed
// extension, domain.ErrNotFound for an unknown hotel, *domain.PersistenceError
// when the document write fails. Two concurrent uploads for one id can each
// read the pre-upload images list and drop the other's URLs on write-back;
// accepted, single-writer assumption.
func (s *ImageService) UploadImages(ctx context.Context, hotelID string, uploads []Upload) ([]string, error) {
	var (
		stored   []domain.StoredImage
		rejected []string
	)

	for _, u := range uploads {
		if !allowedExt(u.Name) {
			rejected = append(rejected, u.Name)
			continue
		}
		img, err := s.files.Save("images", u.Name, u.Content)
		if err != nil {
			s.cleanup(stored)
			return nil, &domain.PersistenceError{Op: "store image", Err: err}
		}
		stored = append(stored, img)
	}

	if len(rejected) > 0 {
		observability.ObserveUpload("rejected")
		s.cleanup(stored)
		return nil, &domain.InvalidFormatError{Rejected: rejected, Allowed: AllowedImageFormats}
	}

	h, err := s.store.Load(ctx, hotelID)
	if err != nil {
		s.cleanup(stored)
		return nil, err
	}

	urls := make([]string, len(stored))
	for i, img := range stored {
		urls[i] = img.URL
	}
	h.Images = append(h.Images, urls...)

	if err := s.store.Save(ctx, h); err != nil {
		s.cleanup(stored)
		return nil, &domain.PersistenceError{Op: "upload images", Err: err}
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, cacheKey(hotelID))
	}
	observability.ObserveUpload("accepted")
	return urls, nil
}

// cleanup removes already-written files. Best effort: the primary error is
// being reported, removal failures are only logged.
func (s *ImageService) cleanup(stored []domain.StoredImage) {
	var g errgroup.Group
	for _, img := range stored {
		g.Go(func() error {
			if err := s.files.Remove(img.Name); err != nil {
				log.Warn().Err(err).Str("file", img.Name).Msg("orphan cleanup failed")
			}
			return nil
		})
	}
	_ = g.Wait()
	if len(stored) > 0 {
		observability.ObserveUpload("cleaned")
	}
}
