package state

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load missing: %v", err)
	}

	if err := s.Save(ctx, "k", []byte(`{"a":1}`), 0); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"a":1}`)) {
		t.Fatalf("Load = %s", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after delete: %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte("abc")
	s.Save(ctx, "k", original, 0)
	original[0] = 'z'

	got, _ := s.Load(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased the caller's slice: %s", got)
	}

	got[0] = 'z'
	again, _ := s.Load(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("loaded value aliased the store's slice: %s", again)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Save(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Save: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := s.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired key should be gone, got %v", err)
	}
}

func TestMemoryStoreDeleteMissingIsNoop(t *testing.T) {
	if err := NewMemoryStore().Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}
