package model

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPicked    Status = "picked"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Event is a requested order status change.
type Event string

const (
	EventPick    Event = "pick"
	EventDeliver Event = "deliver"
	EventCancel  Event = "cancel"
)

// Terminal reports whether no further transition is valid from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the status reached by applying e to s. ok is false when
// the transition is not permitted:
//
//	pending  -> pick    -> picked
//	pending, picked -> deliver -> delivered
//	pending, picked -> cancel  -> cancelled
//	delivered, cancelled: terminal, nothing applies
func (s Status) Next(e Event) (Status, bool) {
	if s.Terminal() {
		return s, false
	}
	switch e {
	case EventPick:
		if s == StatusPending {
			return StatusPicked, true
		}
	case EventDeliver:
		return StatusDelivered, true
	case EventCancel:
		return StatusCancelled, true
	}
	return s, false
}

// ValidEvent reports whether e names a known transition event.
func ValidEvent(e Event) bool {
	return e == EventPick || e == EventDeliver || e == EventCancel
}

// Order is one customer request to deliver the contents of a slot.
// ItemName, Slot and Price are snapshotted at placement time and never
// re-read from the catalog, so later slot edits leave placed orders
// unchanged.
type Order struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Slot      string    `json:"slot"`
	ItemName  string    `json:"item_name"`
	Price     string    `json:"price"`
	Room      string    `json:"room"`
	Phone     string    `json:"phone"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
