package shopping

import (
	"encoding/json"
	"fmt"
	"sort"

	"menu-planner/internal/kv"
)

const purchasedKey = "shopping:purchased_items:v1"

// PurchaseTracker keeps the purchased/unpurchased state of shopping-list
// items across sessions. Items are addressed by category, position, and name
// so the state survives list regeneration as long as the list is unchanged.
// Single-writer access is assumed; the tracker does no locking beyond the
// store's own.
type PurchaseTracker struct {
	store     kv.Client
	purchased map[string]struct{}
}

// NewPurchaseTracker creates a tracker backed by the given key-value store.
func NewPurchaseTracker(store kv.Client) *PurchaseTracker {
	return &PurchaseTracker{
		store:     store,
		purchased: make(map[string]struct{}),
	}
}

func itemKey(category string, index int, name string) string {
	return fmt.Sprintf("%s-%d-%s", category, index, name)
}

// Load restores the purchased set from the store.
func (t *PurchaseTracker) Load() error {
	raw, err := t.store.Get(purchasedKey)
	if err != nil {
		return fmt.Errorf("failed to load purchased items: %w", err)
	}
	t.purchased = make(map[string]struct{})
	if raw == "" {
		return nil
	}

	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return fmt.Errorf("failed to unmarshal purchased items: %w", err)
	}
	for _, k := range keys {
		t.purchased[k] = struct{}{}
	}
	return nil
}

// Mark sets the purchase state of one item and persists the snapshot.
func (t *PurchaseTracker) Mark(category string, index int, name string, purchased bool) error {
	key := itemKey(category, index, name)
	if purchased {
		t.purchased[key] = struct{}{}
	} else {
		delete(t.purchased, key)
	}
	return t.save()
}

// IsPurchased reports whether an item is marked purchased.
func (t *PurchaseTracker) IsPurchased(category string, index int, name string) bool {
	_, ok := t.purchased[itemKey(category, index, name)]
	return ok
}

// Reset clears all purchase state, typically after generating a new menu.
func (t *PurchaseTracker) Reset() error {
	t.purchased = make(map[string]struct{})
	return t.save()
}

func (t *PurchaseTracker) save() error {
	keys := make([]string, 0, len(t.purchased))
	for k := range t.purchased {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal purchased items: %w", err)
	}
	if err := t.store.Set(purchasedKey, string(data)); err != nil {
		return fmt.Errorf("failed to save purchased items: %w", err)
	}
	return nil
}
