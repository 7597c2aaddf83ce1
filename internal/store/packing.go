package store

import "calatorie/internal/model"

// Packing categories, in catalog order.
const (
	PackingDocuments   = "documents"
	PackingClothing    = "clothing"
	PackingToiletries  = "toiletries"
	PackingElectronics = "electronics"
	PackingAccessories = "accessories"
	PackingMedications = "medications"
)

// PackingCategories lists the six fixed categories in display order.
var PackingCategories = []string{
	PackingDocuments,
	PackingClothing,
	PackingToiletries,
	PackingElectronics,
	PackingAccessories,
	PackingMedications,
}

// packingCatalog is the fixed, trip-independent packing list.
var packingCatalog = map[string][]string{
	PackingDocuments:   {"Passport", "Plane ticket", "Hotel confirmations", "Travel insurance", "Credit card"},
	PackingClothing:    {"Weather-appropriate clothing", "Comfortable shoes", "Sleepwear", "Jacket", "Cap or hat"},
	PackingToiletries:  {"Toothbrush", "Toothpaste", "Soap", "Shampoo", "Deodorant", "Personal medication"},
	PackingElectronics: {"Phone", "Charger", "Power adapter", "Camera", "Power bank"},
	PackingAccessories: {"Wallet", "Keys", "Sunglasses", "Umbrella", "Backpack"},
	PackingMedications: {"Aspirin", "Anti-diarrheal", "Bandages", "SPF cream"},
}

// GeneratePackingList replaces the packing list with the fixed catalog:
// every item unpacked, quantity 1. Regenerating discards any manual
// customization, including packed flags and deleted items.
func (s *Store) GeneratePackingList() error {
	s.state.PackingItems = s.state.PackingItems[:0]
	for _, category := range PackingCategories {
		for _, name := range packingCatalog[category] {
			s.packingSeq++
			s.state.PackingItems = append(s.state.PackingItems, model.PackingItem{
				ID:       s.packingSeq,
				Name:     name,
				Category: category,
				Quantity: 1,
				Packed:   false,
			})
		}
	}
	return s.persist()
}

// TogglePackingItem flips the packed flag of one item. Missing ids are a
// silent no-op.
func (s *Store) TogglePackingItem(id int) error {
	for i := range s.state.PackingItems {
		if s.state.PackingItems[i].ID == id {
			s.state.PackingItems[i].Packed = !s.state.PackingItems[i].Packed
			return s.persist()
		}
	}
	return nil
}

// DeletePackingItem removes one item by id. Missing ids are a silent
// no-op.
func (s *Store) DeletePackingItem(id int) error {
	kept := s.state.PackingItems[:0]
	for _, item := range s.state.PackingItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.state.PackingItems) {
		return nil
	}
	s.state.PackingItems = kept
	return s.persist()
}

// PackingByCategory groups the current packing list by category in catalog
// order, for rendering. Categories without items are omitted.
func (s *Store) PackingByCategory() [][]model.PackingItem {
	byCategory := make(map[string][]model.PackingItem)
	for _, item := range s.state.PackingItems {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	var groups [][]model.PackingItem
	for _, category := range PackingCategories {
		if items := byCategory[category]; len(items) > 0 {
			groups = append(groups, items)
		}
	}
	return groups
}
