package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"menu-planner/internal/dish"
	"menu-planner/internal/menu"
	"menu-planner/internal/shopping"

	"github.com/gorilla/mux"
)

// CatalogSource supplies the dish catalog.
type CatalogSource interface {
	List(ctx context.Context) ([]dish.Dish, error)
}

// MenuStore persists generated menus.
type MenuStore interface {
	Save(ctx context.Context, m *menu.WeeklyMenu) (int64, error)
	Latest(ctx context.Context) (*menu.StoredMenu, error)
	Update(ctx context.Context, id int64, m *menu.WeeklyMenu) error
}

// Handler serves the planner's HTTP API.
type Handler struct {
	catalog   CatalogSource
	menus     MenuStore
	generator *menu.Generator
	tracker   *shopping.PurchaseTracker
	now       func() time.Time
}

// NewHandler creates a Handler. now may be nil, defaulting to time.Now.
func NewHandler(catalog CatalogSource, menus MenuStore, generator *menu.Generator, tracker *shopping.PurchaseTracker, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		catalog:   catalog,
		menus:     menus,
		generator: generator,
		tracker:   tracker,
		now:       now,
	}
}

// GenerateMenu creates a new weekly menu, persists it as the current menu,
// and clears purchase state.
func (h *Handler) GenerateMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	catalog, err := h.catalog.List(ctx)
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		http.Error(w, "failed to load catalog", http.StatusInternalServerError)
		return
	}

	m := h.generator.Generate(catalog, h.now())
	if _, err := h.menus.Save(ctx, m); err != nil {
		log.Printf("Failed to save menu: %v", err)
		http.Error(w, "failed to save menu", http.StatusInternalServerError)
		return
	}
	if err := h.tracker.Reset(); err != nil {
		log.Printf("Warning: failed to reset purchase state: %v", err)
	}

	writeJSON(w, http.StatusCreated, m)
}

// GetCurrentMenu returns the latest persisted menu.
func (h *Handler) GetCurrentMenu(w http.ResponseWriter, r *http.Request) {
	stored, err := h.currentMenu(w, r)
	if stored == nil || err != nil {
		return
	}
	writeJSON(w, http.StatusOK, stored.Menu)
}

type substituteRequest struct {
	DishID string `json:"dish_id"`
}

// SubstituteMeal replaces a single cell of the current menu.
func (h *Handler) SubstituteMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	day, slot := vars["day"], vars["slot"]

	var req substituteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DishID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	catalog, err := h.catalog.List(ctx)
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		http.Error(w, "failed to load catalog", http.StatusInternalServerError)
		return
	}
	d, ok := dish.ByID(catalog, req.DishID)
	if !ok {
		http.Error(w, "unknown dish", http.StatusNotFound)
		return
	}

	stored, err := h.currentMenu(w, r)
	if stored == nil || err != nil {
		return
	}
	if err := stored.Menu.Replace(day, slot, d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.menus.Update(ctx, stored.ID, stored.Menu); err != nil {
		log.Printf("Failed to update menu %d: %v", stored.ID, err)
		http.Error(w, "failed to update menu", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stored.Menu)
}

// GetAlternatives lists substitution candidates for one cell, closest
// calorie match first.
func (h *Handler) GetAlternatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	day, slot := vars["day"], vars["slot"]

	stored, err := h.currentMenu(w, r)
	if stored == nil || err != nil {
		return
	}
	meal := stored.Menu.Meal(day, slot)
	if meal == nil {
		http.Error(w, "no meal in that cell", http.StatusNotFound)
		return
	}

	catalog, err := h.catalog.List(ctx)
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		http.Error(w, "failed to load catalog", http.StatusInternalServerError)
		return
	}
	ref, ok := dish.ByID(catalog, meal.DishID)
	if !ok {
		http.Error(w, "dish no longer in catalog", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dish.Similar(catalog, ref))
}

type shoppingItemResponse struct {
	shopping.Item
	Purchased bool `json:"purchased"`
}

// GetShoppingList derives the categorized list for the current menu,
// decorated with purchase state.
func (h *Handler) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	list, ok := h.buildList(w, r)
	if !ok {
		return
	}

	resp := make(map[string][]shoppingItemResponse, len(shopping.Buckets))
	for _, bucket := range shopping.Buckets {
		items := make([]shoppingItemResponse, 0, len(list[bucket]))
		for i, item := range list[bucket] {
			items = append(items, shoppingItemResponse{
				Item:      item,
				Purchased: h.tracker.IsPurchased(bucket, i, item.Name),
			})
		}
		resp[bucket] = items
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetShoppingListText returns the shareable plain-text rendering.
func (h *Handler) GetShoppingListText(w http.ResponseWriter, r *http.Request) {
	list, ok := h.buildList(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(shopping.FormatText(list)))
}

type markPurchasedRequest struct {
	Category  string `json:"category"`
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Purchased bool   `json:"purchased"`
}

// MarkPurchased flips the purchase state of one shopping-list item.
func (h *Handler) MarkPurchased(w http.ResponseWriter, r *http.Request) {
	var req markPurchasedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.tracker.Mark(req.Category, req.Index, req.Name, req.Purchased); err != nil {
		log.Printf("Failed to mark item: %v", err)
		http.Error(w, "failed to save purchase state", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetPurchases clears all purchase state.
func (h *Handler) ResetPurchases(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.Reset(); err != nil {
		log.Printf("Failed to reset purchase state: %v", err)
		http.Error(w, "failed to reset purchase state", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Ping is the health check.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) currentMenu(w http.ResponseWriter, r *http.Request) (*menu.StoredMenu, error) {
	stored, err := h.menus.Latest(r.Context())
	if err != nil {
		log.Printf("Failed to load current menu: %v", err)
		http.Error(w, "failed to load current menu", http.StatusInternalServerError)
		return nil, err
	}
	if stored == nil {
		http.Error(w, "no menu generated yet", http.StatusNotFound)
		return nil, nil
	}
	return stored, nil
}

func (h *Handler) buildList(w http.ResponseWriter, r *http.Request) (shopping.List, bool) {
	stored, err := h.currentMenu(w, r)
	if stored == nil || err != nil {
		return nil, false
	}
	catalog, err := h.catalog.List(r.Context())
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		http.Error(w, "failed to load catalog", http.StatusInternalServerError)
		return nil, false
	}
	return shopping.Build(stored.Menu, catalog), true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
