package store

import (
	"context"
	"encoding/json"
	"testing"

	"hostelvend-api/internal/model"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, err := kv.Get(ctx, "missing"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get = (%q, %v), want v1", got, err)
	}

	// overwrite
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("expected overwrite to win, got %q", got)
	}
}

func TestItemsInitializedOnFirstRead(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryKV())

	items, err := st.Items(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 42 {
		t.Fatalf("expected 42 items after bootstrap, got %d", len(items))
	}
	for _, slot := range model.Slots() {
		if items[slot].Img == "" {
			t.Errorf("slot %s bootstrapped without image", slot)
		}
	}
}

func TestCorruptRecordResetsToDefault(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := New(kv)

	if err := kv.Set(ctx, KeyItems, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	items, err := st.Items(ctx)
	if err != nil {
		t.Fatalf("corrupt record must not surface an error, got %v", err)
	}
	if len(items) != 42 {
		t.Fatalf("expected pristine defaults, got %d items", len(items))
	}
	if items["A1"].Name != "Lays (Small)" {
		t.Errorf("defaults not restored: A1 = %+v", items["A1"])
	}

	// The default must also have been written back.
	raw, err := kv.Get(ctx, KeyItems)
	if err != nil {
		t.Fatal(err)
	}
	var reread map[string]model.Item
	if err := json.Unmarshal(raw, &reread); err != nil {
		t.Fatalf("persisted default is not valid JSON: %v", err)
	}
	if len(reread) != 42 {
		t.Errorf("persisted default has %d items", len(reread))
	}
}

func TestCorruptOrdersResetToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := New(kv)

	if err := kv.Set(ctx, KeyOrders, []byte(`{"oops": true}`)); err != nil {
		t.Fatal(err)
	}

	orders, err := st.Orders(ctx)
	if err != nil {
		t.Fatalf("corrupt record must not surface an error, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty ledger, got %d orders", len(orders))
	}
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryKV())

	users, err := st.Users(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty registry, got %d", len(users))
	}

	users["alice"] = model.Account{Username: "alice", Password: "pw123", Room: "402A", Phone: "9999999999"}
	if err := st.SaveUsers(ctx, users); err != nil {
		t.Fatal(err)
	}

	reread, err := st.Users(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if reread["alice"].Phone != "9999999999" {
		t.Errorf("round trip lost data: %+v", reread["alice"])
	}
}

func TestPersistedRecordsArePrettyPrinted(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := New(kv)

	if _, err := st.Items(ctx); err != nil {
		t.Fatal(err)
	}

	raw, err := kv.Get(ctx, KeyItems)
	if err != nil {
		t.Fatal(err)
	}
	var indented map[string]model.Item
	if err := json.Unmarshal(raw, &indented); err != nil {
		t.Fatal(err)
	}
	want, _ := json.MarshalIndent(indented, "", "  ")
	if string(raw) != string(want) {
		t.Error("persisted record is not pretty-printed JSON")
	}
}
