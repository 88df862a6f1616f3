package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"hostelvend-api/internal/model"
	"hostelvend-api/internal/store"
	"hostelvend-api/pkg/apierror"
)

// CatalogService owns the fixed 42-slot vending grid and its contents.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new catalog service.
// Returns nil if st is nil (required dependency).
func NewCatalogService(st *store.Store) *CatalogService {
	if st == nil {
		return nil
	}
	return &CatalogService{store: st}
}

// Slots returns the 42 slot identifiers in fixed row-major order.
func (s *CatalogService) Slots() []string {
	return model.Slots()
}

// List returns every slot's item in grid order.
func (s *CatalogService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load catalog")
	}

	out := make([]model.Item, 0, len(items))
	for _, slot := range model.Slots() {
		out = append(out, items[slot])
	}
	return out, nil
}

// GetItem returns the item currently assigned to slot.
func (s *CatalogService) GetItem(ctx context.Context, slot string) (*model.Item, error) {
	if !model.ValidSlot(slot) {
		return nil, apierror.NotFound(fmt.Sprintf("unknown slot %q", slot))
	}

	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load catalog")
	}

	item, ok := items[slot]
	if !ok {
		return nil, apierror.NotFound(fmt.Sprintf("slot %q not initialized", slot))
	}
	return &item, nil
}

// ItemPatch is a partial slot update. Nil fields retain their prior value.
type ItemPatch struct {
	Name  *string `json:"name"`
	Price *string `json:"price"`
	Img   *string `json:"img"`
}

// SetItem applies a partial update to one slot. A blank or
// whitespace-only name is coerced to the empty-slot sentinel.
func (s *CatalogService) SetItem(ctx context.Context, slot string, patch ItemPatch) (*model.Item, error) {
	if !model.ValidSlot(slot) {
		return nil, apierror.NotFound(fmt.Sprintf("unknown slot %q", slot))
	}

	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load catalog")
	}

	item := items[slot]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			name = model.EmptySlotName
		}
		item.Name = name
	}
	if patch.Price != nil {
		item.Price = strings.TrimSpace(*patch.Price)
	}
	if patch.Img != nil {
		item.Img = *patch.Img
	}
	item.Slot = slot
	items[slot] = item

	if err := s.store.SaveItems(ctx, items); err != nil {
		return nil, apierror.InternalError("failed to save catalog")
	}

	log.Printf("[CatalogService] Updated slot %s (%s)", slot, item.Name)
	return &item, nil
}

// ClearSlot resets one slot to the empty sentinel with a freshly
// synthesized placeholder image.
func (s *CatalogService) ClearSlot(ctx context.Context, slot string) (*model.Item, error) {
	if !model.ValidSlot(slot) {
		return nil, apierror.NotFound(fmt.Sprintf("unknown slot %q", slot))
	}

	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load catalog")
	}

	item := model.Item{
		Slot:  slot,
		Name:  model.EmptySlotName,
		Price: "",
		Img:   model.PlaceholderImage(slot),
	}
	items[slot] = item

	if err := s.store.SaveItems(ctx, items); err != nil {
		return nil, apierror.InternalError("failed to save catalog")
	}

	log.Printf("[CatalogService] Cleared slot %s", slot)
	return &item, nil
}

// ResetAll restores all 42 slots to the built-in defaults, discarding
// every customization.
func (s *CatalogService) ResetAll(ctx context.Context) error {
	if err := s.store.SaveItems(ctx, model.DefaultItems()); err != nil {
		return apierror.InternalError("failed to reset catalog")
	}
	log.Printf("[CatalogService] Catalog reset to defaults")
	return nil
}

// Export serializes the full catalog as pretty-printed JSON.
func (s *CatalogService) Export(ctx context.Context) ([]byte, error) {
	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, apierror.InternalError("failed to load catalog")
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, apierror.InternalError("failed to serialize catalog")
	}
	return data, nil
}

// importedItem mirrors model.Item but keeps the name as a pointer so a
// missing field is distinguishable from an empty one.
type importedItem struct {
	Slot  string  `json:"slot"`
	Name  *string `json:"name"`
	Price string  `json:"price"`
	Img   string  `json:"img"`
}

// Import replaces the whole catalog from exported JSON. The import is
// atomic: unless every one of the 42 slots is present with a name field,
// nothing is written and the existing catalog stays untouched.
func (s *CatalogService) Import(ctx context.Context, data []byte) error {
	var imported map[string]importedItem
	if err := json.Unmarshal(data, &imported); err != nil {
		return apierror.ValidationError("catalog file is not valid JSON")
	}

	for _, slot := range model.Slots() {
		entry, ok := imported[slot]
		if !ok || entry.Name == nil {
			return apierror.ValidationError(fmt.Sprintf("catalog file is missing slot %s", slot))
		}
	}
	// Supersets are rejected wholesale too: the grid has exactly 42 slots.
	for key := range imported {
		if !model.ValidSlot(key) {
			return apierror.ValidationError(fmt.Sprintf("catalog file has unknown slot %q", key))
		}
	}

	items := make(map[string]model.Item, 42)
	for _, slot := range model.Slots() {
		entry := imported[slot]
		img := entry.Img
		if img == "" {
			img = model.PlaceholderImage(slot)
		}
		items[slot] = model.Item{
			Slot:  slot,
			Name:  *entry.Name,
			Price: entry.Price,
			Img:   img,
		}
	}

	if err := s.store.SaveItems(ctx, items); err != nil {
		return apierror.InternalError("failed to save catalog")
	}

	log.Printf("[CatalogService] Imported catalog (%d slots)", len(items))
	return nil
}
