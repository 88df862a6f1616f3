package model

import "testing"

func TestStatusNext(t *testing.T) {
	tests := []struct {
		from  Status
		event Event
		want  Status
		ok    bool
	}{
		{StatusPending, EventPick, StatusPicked, true},
		{StatusPending, EventDeliver, StatusDelivered, true},
		{StatusPending, EventCancel, StatusCancelled, true},
		{StatusPicked, EventDeliver, StatusDelivered, true},
		{StatusPicked, EventCancel, StatusCancelled, true},
		{StatusPicked, EventPick, StatusPicked, false},
		{StatusDelivered, EventDeliver, StatusDelivered, false},
		{StatusDelivered, EventCancel, StatusDelivered, false},
		{StatusDelivered, EventPick, StatusDelivered, false},
		{StatusCancelled, EventPick, StatusCancelled, false},
		{StatusCancelled, EventDeliver, StatusCancelled, false},
		{StatusCancelled, EventCancel, StatusCancelled, false},
	}

	for _, tt := range tests {
		got, ok := tt.from.Next(tt.event)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s + %s = (%s, %v), want (%s, %v)", tt.from, tt.event, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusPicked.Terminal() {
		t.Error("pending/picked must not be terminal")
	}
	if !StatusDelivered.Terminal() || !StatusCancelled.Terminal() {
		t.Error("delivered/cancelled must be terminal")
	}
}

func TestValidEvent(t *testing.T) {
	for _, e := range []Event{EventPick, EventDeliver, EventCancel} {
		if !ValidEvent(e) {
			t.Errorf("ValidEvent(%s) = false", e)
		}
	}
	if ValidEvent("call") || ValidEvent("") {
		t.Error("unknown events must be rejected")
	}
}
