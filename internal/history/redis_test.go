package history

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T, opts ...StoreOption) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return NewRedisStore(rc, opts...)
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, city := range []string{"北京", "上海", "广州市", "北京", " "} {
		if err := s.Record(ctx, city); err != nil {
			t.Fatalf("record %q: %v", city, err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"北京", "广州市", "上海"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recent = %v, want %v", got, want)
	}
}

func TestRecordTrims(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, MaxOption(2))

	for _, city := range []string{"a", "b", "c"} {
		if err := s.Record(ctx, city); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Recent(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"c", "b"}) {
		t.Errorf("recent = %v", got)
	}
}

func TestRecentLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, KeyOption("test:recent"))

	for _, city := range []string{"a", "b", "c"} {
		if err := s.Record(ctx, city); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("recent = %v", got)
	}

	got, err = s.Recent(ctx, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("recent(0) = %v, %v", got, err)
	}
}

func TestRecentEmpty(t *testing.T) {
	got, err := newTestStore(t).Recent(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("recent = %v", got)
	}
}
