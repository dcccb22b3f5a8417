package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "atlas_travel/internal/adapters/redis"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := c.Set(ctx, "catalog:dest", payload{Name: "Maldives", Count: 3}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	ok, err := c.Get(ctx, "catalog:dest", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got.Name != "Maldives" || got.Count != 3 {
		t.Fatalf("unexpected value: ok=%v %+v", ok, got)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := newTestCache(t)

	var got string
	ok, err := c.Get(context.Background(), "nope", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestCache_DelPrefix(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, k := range []string{"catalog:a", "catalog:b", "other:c"} {
		if err := c.Set(ctx, k, "v", 60); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	if err := c.DelPrefix(ctx, "catalog:"); err != nil {
		t.Fatalf("delprefix: %v", err)
	}

	var got string
	if ok, _ := c.Get(ctx, "catalog:a", &got); ok {
		t.Fatalf("catalog:a should be gone")
	}
	if ok, _ := c.Get(ctx, "catalog:b", &got); ok {
		t.Fatalf("catalog:b should be gone")
	}
	if ok, _ := c.Get(ctx, "other:c", &got); !ok {
		t.Fatalf("other:c should survive")
	}
}
