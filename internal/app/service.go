package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domain"
	"hotelier/internal/slugify"
)

// HotelService owns the create/get/update lifecycle and keeps the slug
// invariants: hotel.slug mirrors the title, every room carries its own
// roomSlug plus the owning hotel's slug.
type HotelService struct {
	store    domain.HotelStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(s domain.HotelStore, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{store: s, cache: c, cacheTTL: ttl}
}

func cacheKey(id string) string { return "hotel:" + id }

// CreateHotel assigns a fresh id, derives all slugs and persists the result.
// The input's ID/Slug and room slugs are ignored; they are always computed
// here.
func (s *HotelService) CreateHotel(ctx context.Context, in domain.Hotel) (domain.Hotel, error) {
	in.ID = uuid.NewString()
	in.Slug = slugify.Make(in.Title)
	in.Rooms = resyncRooms(in.Rooms, in.Slug)

	if err := s.store.Save(ctx, in); err != nil {
		return domain.Hotel{}, &domain.PersistenceError{Op: "create hotel", Err: err}
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey(in.ID), in, int(s.cacheTTL.Seconds()))
	}
	return in, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := cacheKey(id)
	if s.cache != nil {
		var h domain.Hotel
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	h, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

// UpdateHotel merges the present patch fields over the stored hotel.
// Room slug resynchronization, in priority order:
//   - patch.rooms present: full replacement, every roomSlug recomputed and
//     every hotelSlug set to the (possibly new) hotel slug;
//   - only patch.title present: room content untouched, hotelSlug rewritten
//     on every room;
//   - neither: rooms left alone.
//
// The read-modify-write is not transactional; a racing update on the same
// id is last-writer-wins.
func (s *HotelService) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (domain.Hotel, error) {
	h, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}

	if p.Title != nil {
		h.Title = *p.Title
		h.Slug = slugify.Make(*p.Title)
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.GuestCount != nil {
		h.GuestCount = *p.GuestCount
	}
	if p.BedroomCount != nil {
		h.BedroomCount = *p.BedroomCount
	}
	if p.BathroomCount != nil {
		h.BathroomCount = *p.BathroomCount
	}
	if p.Amenities != nil {
		h.Amenities = *p.Amenities
	}
	if p.Host != nil {
		h.Host = *p.Host
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Latitude != nil {
		h.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		h.Longitude = *p.Longitude
	}
	if p.Images != nil {
		h.Images = *p.Images
	}

	switch {
	case p.Rooms != nil:
		h.Rooms = resyncRooms(*p.Rooms, h.Slug)
	case p.Title != nil:
		for i := range h.Rooms {
			h.Rooms[i].HotelSlug = h.Slug
		}
	}

	if err := s.store.Save(ctx, h); err != nil {
		return domain.Hotel{}, &domain.PersistenceError{Op: "update hotel", Err: err}
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, cacheKey(id))
	}
	return h, nil
}

// resyncRooms recomputes every room's own slug and stamps the owning
// hotel's slug. Returns a copy so callers' slices are never aliased.
func resyncRooms(rooms []domain.Room, hotelSlug string) []domain.Room {
	out := make([]domain.Room, len(rooms))
	for i, r := range rooms {
		r.RoomSlug = slugify.Make(r.RoomTitle)
		r.HotelSlug = hotelSlug
		out[i] = r
	}
	return out
}
