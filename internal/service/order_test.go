package service

import (
	"context"
	"testing"

	"hostelvend-api/internal/model"
)

func registerAlice(t *testing.T, env *testEnv) {
	t.Helper()
	if _, err := env.accounts.Register(context.Background(), "alice", "pw123", "402A", "9999999999"); err != nil {
		t.Fatal(err)
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	order, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	if order.ItemName != "Lays (Small)" || order.Price != "20" || order.Slot != "A1" {
		t.Errorf("snapshot fields wrong: %+v", order)
	}
	if order.Status != model.StatusPending {
		t.Errorf("new order must be pending, got %s", order.Status)
	}
	if order.ID == "" || order.CreatedAt.IsZero() {
		t.Errorf("order missing id or timestamp: %+v", order)
	}
}

func TestPlaceGuards(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		slot  string
		room  string
		phone string
		code  string
	}{
		{"bad phone", "A1", "402A", "12345", "VALIDATION_ERROR"},
		{"bad room", "A1", "bad-room", "9999999999", "VALIDATION_ERROR"},
		{"empty slot not sellable", "B1", "402A", "9999999999", "VALIDATION_ERROR"},
		{"unknown slot", "Z9", "402A", "9999999999", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			registerAlice(t, env)
			_, err := env.orders.Place(ctx, "alice", tt.slot, tt.room, tt.phone)
			wantCode(t, err, tt.code)
		})
	}
}

func TestPlaceRequiresAccount(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.Place(context.Background(), "ghost", "A1", "402A", "9999999999")
	wantCode(t, err, "NOT_FOUND")
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	if _, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999"); err != nil {
		t.Fatal(err)
	}

	// Editing the slot after placement must not leak into the order.
	if _, err := env.catalog.SetItem(ctx, "A1", ItemPatch{Name: strptr("Chips XL"), Price: strptr("99")}); err != nil {
		t.Fatal(err)
	}

	mine, err := env.orders.ListForAccount(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 order, got %d", len(mine))
	}
	if mine[0].ItemName != "Lays (Small)" || mine[0].Price != "20" {
		t.Errorf("order lost its snapshot: %+v", mine[0])
	}
}

func TestNewOrdersAtHead(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	first, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	second, err := env.orders.Place(ctx, "alice", "A2", "402A", "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Fatal("order IDs collided")
	}

	all, err := env.orders.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("expected newest first, got %v then %v", all[0].ID, all[1].ID)
	}
}

func TestTransitionLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	order, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	if err != nil {
		t.Fatal(err)
	}

	picked, err := env.orders.Transition(ctx, order.ID, model.EventPick)
	if err != nil {
		t.Fatal(err)
	}
	if picked.Status != model.StatusPicked {
		t.Fatalf("expected picked, got %s", picked.Status)
	}

	delivered, err := env.orders.Transition(ctx, order.ID, model.EventDeliver)
	if err != nil {
		t.Fatal(err)
	}
	if delivered.Status != model.StatusDelivered {
		t.Fatalf("expected delivered, got %s", delivered.Status)
	}

	// Delivered is terminal: a second deliver and a cancel both fail.
	_, err = env.orders.Transition(ctx, order.ID, model.EventDeliver)
	wantCode(t, err, "INVALID_TRANSITION")
	_, err = env.orders.Transition(ctx, order.ID, model.EventCancel)
	wantCode(t, err, "INVALID_TRANSITION")
}

func TestCancelFromPicked(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	order, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.orders.Transition(ctx, order.ID, model.EventPick); err != nil {
		t.Fatal(err)
	}

	cancelled, err := env.orders.Transition(ctx, order.ID, model.EventCancel)
	if err != nil {
		t.Fatalf("cancel from picked must be allowed: %v", err)
	}
	if cancelled.Status != model.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	// Cancelled is terminal too.
	_, err = env.orders.Transition(ctx, order.ID, model.EventPick)
	wantCode(t, err, "INVALID_TRANSITION")
}

func TestTransitionKeepsPosition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	first, _ := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	second, _ := env.orders.Place(ctx, "alice", "A2", "402A", "9999999999")

	if _, err := env.orders.Transition(ctx, first.ID, model.EventPick); err != nil {
		t.Fatal(err)
	}

	all, err := env.orders.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Error("transition must not change ledger position")
	}
	if all[1].Status != model.StatusPicked {
		t.Errorf("status not persisted in place: %+v", all[1])
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.Transition(context.Background(), "ord_missing", model.EventPick)
	wantCode(t, err, "NOT_FOUND")
}

func TestTransitionUnknownEvent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)

	order, _ := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999")
	_, err := env.orders.Transition(ctx, order.ID, model.Event("call"))
	wantCode(t, err, "BAD_REQUEST")
}

func TestListForAccountFilters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerAlice(t, env)
	if _, err := env.accounts.Register(ctx, "bob", "pw123", "101", "8888888888"); err != nil {
		t.Fatal(err)
	}

	if _, err := env.orders.Place(ctx, "alice", "A1", "402A", "9999999999"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.orders.Place(ctx, "bob", "A2", "101", "8888888888"); err != nil {
		t.Fatal(err)
	}

	mine, err := env.orders.ListForAccount(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Username != "alice" {
		t.Errorf("filter broken: %+v", mine)
	}
}
