package model

import (
	"encoding/base64"
	"fmt"
)

// EmptySlotName is the sentinel name for an unstocked slot.
const EmptySlotName = "Empty Slot"

// Item is the content currently assigned to one vending slot.
// Price is numeric-as-text; an empty string means "not for sale".
type Item struct {
	Slot  string `json:"slot"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Img   string `json:"img"`
}

// Sellable reports whether the item can be ordered.
func (i Item) Sellable() bool {
	return i.Name != EmptySlotName && i.Name != "" && i.Price != ""
}

// Slots returns the 42 slot identifiers in row-major order
// (A1..A6, B1..B6, ..., G1..G6). The grid is fixed at startup.
func Slots() []string {
	rows := []string{"A", "B", "C", "D", "E", "F", "G"}
	out := make([]string, 0, len(rows)*6)
	for _, r := range rows {
		for c := 1; c <= 6; c++ {
			out = append(out, fmt.Sprintf("%s%d", r, c))
		}
	}
	return out
}

// ValidSlot reports whether s is one of the 42 grid positions.
func ValidSlot(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'G' && s[1] >= '1' && s[1] <= '6'
}

// PlaceholderImage synthesizes a deterministic SVG data URL labelled with
// the slot identifier, used whenever a slot has no uploaded image.
func PlaceholderImage(label string) string {
	svg := fmt.Sprintf(`<svg xmlns='http://www.w3.org/2000/svg' width='800' height='500'><rect width='100%%' height='100%%' fill='#f3f4f6'/><text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' font-size='48' fill='#9ca3af'>%s</text></svg>`, label)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// DefaultItems builds the canonical catalog: all 42 slots empty with
// placeholder images, plus the three pre-seeded sample items.
func DefaultItems() map[string]Item {
	items := make(map[string]Item, 42)
	for _, s := range Slots() {
		items[s] = Item{
			Slot:  s,
			Name:  EmptySlotName,
			Price: "",
			Img:   PlaceholderImage(s),
		}
	}

	seed := func(slot, name, price string) {
		it := items[slot]
		it.Name = name
		it.Price = price
		items[slot] = it
	}
	seed("A1", "Lays (Small)", "20")
	seed("A2", "Coke (300ml)", "35")
	seed("A3", "Biscuits", "15")

	return items
}
