package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelier/internal/app"
	"hotelier/internal/domain"
)

// ---- fakes ----

type memStore struct {
	hotels  map[string]domain.Hotel
	saveErr error
	loadErr error
}

func newMemStore() *memStore { return &memStore{hotels: map[string]domain.Hotel{}} }

func (m *memStore) Save(ctx context.Context, h domain.Hotel) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.hotels[h.ID] = h
	return nil
}

func (m *memStore) Load(ctx context.Context, id string) (domain.Hotel, error) {
	if m.loadErr != nil {
		return domain.Hotel{}, m.loadErr
	}
	h, ok := m.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

type fakeCache struct {
	store map[string]domain.Hotel
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.Hotel); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.Hotel{}
	}
	if h, ok := v.(domain.Hotel); ok {
		c.store[key] = h
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func ptr[T any](v T) *T { return &v }

// ---- tests ----

func TestCreateHotel_AssignsIDAndSlugs(t *testing.T) {
	store := newMemStore()
	svc := app.NewHotelService(store, nil, time.Minute)

	h, err := svc.CreateHotel(context.Background(), domain.Hotel{
		Title: "Test Hotel",
		Rooms: []domain.Room{{RoomTitle: "Deluxe Room"}},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if h.Slug != "test-hotel" {
		t.Fatalf("slug = %q, want test-hotel", h.Slug)
	}
	if h.Rooms[0].RoomSlug != "deluxe-room" || h.Rooms[0].HotelSlug != "test-hotel" {
		t.Fatalf("unexpected room slugs: %+v", h.Rooms[0])
	}
	if _, ok := store.hotels[h.ID]; !ok {
		t.Fatal("hotel not persisted")
	}
}

func TestCreateHotel_UniqueIDs(t *testing.T) {
	svc := app.NewHotelService(newMemStore(), nil, time.Minute)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		h, err := svc.CreateHotel(context.Background(), domain.Hotel{Title: "Same Title"})
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if seen[h.ID] {
			t.Fatalf("duplicate id %s", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestCreateHotel_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	svc := app.NewHotelService(store, nil, time.Minute)

	_, err := svc.CreateHotel(context.Background(), domain.Hotel{Title: "X"})
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestGetHotel_NotFound(t *testing.T) {
	svc := app.NewHotelService(newMemStore(), nil, time.Minute)
	_, err := svc.GetHotel(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	store := newMemStore()
	store.hotels["42"] = domain.Hotel{ID: "42", Title: "Cached Inn", Slug: "cached-inn"}
	cache := &fakeCache{}
	svc := app.NewHotelService(store, cache, 10*time.Minute)

	// miss populates the cache
	h, err := svc.GetHotel(context.Background(), "42")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Title != "Cached Inn" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// mutate the store to prove the second read is served from cache
	store.hotels["42"] = domain.Hotel{ID: "42", Title: "SHOULD NOT SEE THIS"}

	h2, err := svc.GetHotel(context.Background(), "42")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h2.Title != "Cached Inn" {
		t.Fatalf("expected cached title, got %q", h2.Title)
	}
}

func TestUpdateHotel_TitleOnlyRewritesHotelSlugs(t *testing.T) {
	store := newMemStore()
	store.hotels["h1"] = domain.Hotel{
		ID: "h1", Title: "Original Hotel", Slug: "original-hotel",
		Rooms: []domain.Room{
			{RoomTitle: "Deluxe Room", RoomSlug: "deluxe-room", HotelSlug: "original-hotel"},
			{RoomTitle: "Suite", RoomSlug: "suite", HotelSlug: "original-hotel"},
		},
	}
	cache := &fakeCache{}
	svc := app.NewHotelService(store, cache, time.Minute)

	h, err := svc.UpdateHotel(context.Background(), "h1", domain.HotelPatch{Title: ptr("Updated Hotel")})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Slug != "updated-hotel" {
		t.Fatalf("slug = %q, want updated-hotel", h.Slug)
	}
	for i, r := range h.Rooms {
		if r.HotelSlug != "updated-hotel" {
			t.Fatalf("rooms[%d].HotelSlug = %q, want updated-hotel", i, r.HotelSlug)
		}
	}
	// room content and own slugs untouched
	if h.Rooms[0].RoomSlug != "deluxe-room" || h.Rooms[1].RoomSlug != "suite" {
		t.Fatalf("room slugs changed: %+v", h.Rooms)
	}
	if len(cache.dels) != 1 || cache.dels[0] != "hotel:h1" {
		t.Fatalf("expected cache invalidation for hotel:h1, got %v", cache.dels)
	}
}

func TestUpdateHotel_RoomsReplacement(t *testing.T) {
	store := newMemStore()
	store.hotels["h1"] = domain.Hotel{
		ID: "h1", Title: "Original Hotel", Slug: "original-hotel",
		Rooms: []domain.Room{{RoomTitle: "Old Room", RoomSlug: "old-room", HotelSlug: "original-hotel"}},
	}
	svc := app.NewHotelService(store, nil, time.Minute)

	rooms := []domain.Room{
		{RoomTitle: "Garden View"},
		{RoomTitle: "Sea View"},
	}
	h, err := svc.UpdateHotel(context.Background(), "h1", domain.HotelPatch{
		Title: ptr("Updated Hotel"),
		Rooms: &rooms,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(h.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(h.Rooms))
	}
	if h.Rooms[0].RoomSlug != "garden-view" || h.Rooms[1].RoomSlug != "sea-view" {
		t.Fatalf("room slugs not recomputed: %+v", h.Rooms)
	}
	for _, r := range h.Rooms {
		if r.HotelSlug != "updated-hotel" {
			t.Fatalf("room hotelSlug = %q, want updated-hotel", r.HotelSlug)
		}
	}
}

func TestUpdateHotel_PartialMergeLeavesRoomsAlone(t *testing.T) {
	store := newMemStore()
	store.hotels["h1"] = domain.Hotel{
		ID: "h1", Title: "Hotel", Slug: "hotel", BedroomCount: 3,
		Rooms: []domain.Room{{RoomTitle: "Room", RoomSlug: "room", HotelSlug: "hotel"}},
	}
	svc := app.NewHotelService(store, nil, time.Minute)

	// bedroomCount:0 is a real value, not "absent"
	h, err := svc.UpdateHotel(context.Background(), "h1", domain.HotelPatch{
		Description:  ptr("Renovated"),
		BedroomCount: ptr(0),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Description != "Renovated" || h.BedroomCount != 0 {
		t.Fatalf("merge wrong: %+v", h)
	}
	if h.Title != "Hotel" || h.Slug != "hotel" {
		t.Fatalf("untouched fields changed: %+v", h)
	}
	if h.Rooms[0] != (domain.Room{RoomTitle: "Room", RoomSlug: "room", HotelSlug: "hotel"}) {
		t.Fatalf("rooms changed: %+v", h.Rooms)
	}
}

func TestUpdateHotel_NotFound(t *testing.T) {
	svc := app.NewHotelService(newMemStore(), nil, time.Minute)
	_, err := svc.UpdateHotel(context.Background(), "ghost", domain.HotelPatch{Title: ptr("X")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
