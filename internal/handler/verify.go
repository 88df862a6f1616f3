package handler

import (
	"encoding/json"
	"net/http"

	"hostelvend-api/internal/service"
	"hostelvend-api/pkg/apierror"
	"hostelvend-api/pkg/response"
)

// VerifyHandler handles verification challenge HTTP requests.
type VerifyHandler struct {
	verify *service.VerifyService
}

// NewVerifyHandler creates a new verification handler.
func NewVerifyHandler(verify *service.VerifyService) *VerifyHandler {
	return &VerifyHandler{verify: verify}
}

// SendRequest represents the request body for issuing a code.
type SendRequest struct {
	Phone string `json:"phone"`
}

// Send handles POST /api/v1/verify/send. No SMS gateway is wired, so
// the code comes back in the response for the UI to relay.
func (h *VerifyHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	code, err := h.verify.Issue(r.Context(), req.Phone)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]string{
		"phone": req.Phone,
		"code":  code,
	})
}

// CheckRequest represents the request body for checking a code.
type CheckRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// Check handles POST /api/v1/verify/check
func (h *VerifyHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if err := h.verify.Verify(r.Context(), req.Phone, req.Code); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "verified"})
}
