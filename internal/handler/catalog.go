package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"hostelvend-api/internal/service"
	"hostelvend-api/pkg/apierror"
	"hostelvend-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/v1/catalog - all 42 slots in grid order.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"slots": h.catalog.Slots(),
		"items": items,
	})
}

// Get handles GET /api/v1/catalog/{slot}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	item, err := h.catalog.GetItem(r.Context(), slot)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, item)
}

// Update handles PUT /api/v1/catalog/{slot} - partial slot update.
// Images arrive as data URLs, already encoded by the uploading client.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	var patch service.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	item, err := h.catalog.SetItem(r.Context(), slot, patch)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, item)
}

// Clear handles DELETE /api/v1/catalog/{slot}
func (h *CatalogHandler) Clear(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")

	item, err := h.catalog.ClearSlot(r.Context(), slot)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, item)
}

// Reset handles POST /api/v1/catalog/reset
func (h *CatalogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.ResetAll(r.Context()); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "reset"})
}

// Export handles GET /api/v1/catalog/export - raw pretty-printed JSON
// suitable for re-import.
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.catalog.Export(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="items.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /api/v1/catalog/import - atomic bulk replace.
func (h *CatalogHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}
	defer r.Body.Close()

	if err := h.catalog.Import(r.Context(), body); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "imported"})
}
