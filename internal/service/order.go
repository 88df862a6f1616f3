package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"hostelvend-api/internal/model"
	"hostelvend-api/internal/store"
	"hostelvend-api/pkg/apierror"
	"hostelvend-api/pkg/uid"
)

// OrderService owns the order ledger and its status state machine. It is
// the single source of truth for transitions: callers are expected to
// offer only legal actions, but every guard is re-checked here.
type OrderService struct {
	store    *store.Store
	accounts *AccountService
	catalog  *CatalogService
}

// NewOrderService creates a new order service.
// Returns nil if any dependency is nil.
func NewOrderService(st *store.Store, accounts *AccountService, catalog *CatalogService) *OrderService {
	if st == nil || accounts == nil || catalog == nil {
		return nil
	}
	return &OrderService{store: st, accounts: accounts, catalog: catalog}
}

// Place creates a pending order for the item currently in slot. Item
// name, slot and price are snapshotted into the order; later catalog
// edits never change a placed order. New orders go to the head of the
// ledger.
func (s *OrderService) Place(ctx context.Context, username, slot, room, phone string) (*model.Order, error) {
	if _, err := s.accounts.Get(ctx, username); err != nil {
		return nil, err
	}

	var details []apierror.FieldError
	if !validRoom(room) {
		details = append(details, apierror.FieldError{Field: "room", Message: "room must be 1-4 digits with an optional letter (e.g. 402A)"})
	}
	if !validPhone(phone) {
		details = append(details, apierror.FieldError{Field: "phone", Message: "phone must be 10 digits"})
	}
	if len(details) > 0 {
		return nil, apierror.ValidationError("invalid delivery details", details...)
	}

	item, err := s.catalog.GetItem(ctx, slot)
	if err != nil {
		return nil, err
	}
	if !item.Sellable() {
		return nil, apierror.ValidationError(fmt.Sprintf("slot %s has nothing for sale", slot))
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load orders")
	}

	order := model.Order{
		ID:        uid.NewOrderID(),
		Username:  username,
		Slot:      slot,
		ItemName:  item.Name,
		Price:     item.Price,
		Room:      room,
		Phone:     phone,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	orders = append([]model.Order{order}, orders...)

	if err := s.store.SaveOrders(ctx, orders); err != nil {
		return nil, apierror.InternalError("failed to save orders")
	}

	log.Printf("[OrderService] Placed %s: %s x %s for %s", order.ID, slot, item.Name, username)
	return &order, nil
}

// Transition applies a status event to an order. Transitions mutate in
// place; the order keeps its position in the ledger.
func (s *OrderService) Transition(ctx context.Context, orderID string, event model.Event) (*model.Order, error) {
	if !model.ValidEvent(event) {
		return nil, apierror.BadRequest(fmt.Sprintf("unknown event %q", event))
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load orders")
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apierror.NotFound("order not found")
	}

	next, ok := orders[idx].Status.Next(event)
	if !ok {
		return nil, apierror.InvalidTransition(
			fmt.Sprintf("cannot %s an order that is %s", event, orders[idx].Status))
	}
	orders[idx].Status = next

	if err := s.store.SaveOrders(ctx, orders); err != nil {
		return nil, apierror.InternalError("failed to save orders")
	}

	order := orders[idx]
	log.Printf("[OrderService] %s -> %s", order.ID, order.Status)
	return &order, nil
}

// ListForAccount returns username's orders, most recent first.
func (s *OrderService) ListForAccount(ctx context.Context, username string) ([]model.Order, error) {
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load orders")
	}

	out := make([]model.Order, 0)
	for _, o := range orders {
		if o.Username == username {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListAll returns every order, most recent first, for the admin view.
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load orders")
	}
	return orders, nil
}
