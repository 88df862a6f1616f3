package handler

import (
	"encoding/json"
	"net/http"

	"hostelvend-api/internal/middleware"
	"hostelvend-api/internal/model"
	"hostelvend-api/internal/service"
	"hostelvend-api/pkg/apierror"
	"hostelvend-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orders *service.OrderService
	verify *service.VerifyService
	// verifyRequired gates order placement behind a one-time code check
	// (the OTP kiosk variant).
	verifyRequired bool
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders *service.OrderService, verify *service.VerifyService, verifyRequired bool) *OrderHandler {
	return &OrderHandler{
		orders:         orders,
		verify:         verify,
		verifyRequired: verifyRequired,
	}
}

// PlaceRequest represents the request body for placing an order.
type PlaceRequest struct {
	Slot  string `json:"slot"`
	Room  string `json:"room"`
	Phone string `json:"phone"`
	// Code is the verification code, required only when the gate is on.
	Code string `json:"code,omitempty"`
}

// Place handles POST /api/v1/orders
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	var req PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.Slot == "" {
		response.Error(w, apierror.BadRequest("slot is required"))
		return
	}

	if h.verifyRequired {
		if err := h.verify.Verify(r.Context(), req.Phone, req.Code); err != nil {
			response.Error(w, err)
			return
		}
	}

	order, err := h.orders.Place(r.Context(), session.Username, req.Slot, req.Room, req.Phone)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, order)
}

// ListMine handles GET /api/v1/orders - the caller's orders, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	orders, err := h.orders.ListForAccount(r.Context(), session.Username)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, orders)
}

// ListAll handles GET /api/v1/orders/all - every order, for the admin view.
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, orders)
}

// Transition handles POST /api/v1/orders/{id}/{event} where event is
// pick, deliver or cancel.
func (h *OrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	event := model.Event(chi.URLParam(r, "event"))

	order, err := h.orders.Transition(r.Context(), orderID, event)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, order)
}
