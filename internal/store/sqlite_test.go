package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kiosk.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := kv.Get(ctx, "missing"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "items", []byte(`{"A1":{}}`)); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, "items", []byte(`{"A2":{}}`)); err != nil {
		t.Fatal(err)
	}

	got, err := kv.Get(ctx, "items")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"A2":{}}` {
		t.Fatalf("last write must win, got %s", got)
	}

	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	// State survives a reopen.
	kv, err = NewSQLiteKV(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	got, err = kv.Get(ctx, "items")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"A2":{}}` {
		t.Fatalf("value lost across reopen, got %s", got)
	}
}
