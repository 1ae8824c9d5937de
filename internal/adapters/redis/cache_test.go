package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "hotelier/internal/adapters/redis"
	"hotelier/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var miss domain.Hotel
	ok, err := c.Get(ctx, "hotel:nope", &miss)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	h := domain.Hotel{ID: "abc", Title: "Test Hotel", Slug: "test-hotel"}
	if err := c.Set(ctx, "hotel:abc", h, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Hotel
	ok, err = c.Get(ctx, "hotel:abc", &got)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if got.Slug != "test-hotel" {
		t.Fatalf("unexpected cached hotel: %+v", got)
	}

	if err := c.Del(ctx, "hotel:abc"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "hotel:abc", &got)
	if ok {
		t.Fatal("expected miss after del")
	}
}
