package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires the planner's handlers onto a mux router.
type Router struct {
	handler   *Handler
	router    *mux.Router
	apiSecret string
}

// NewRouter creates a router with the app's routes. An empty apiSecret
// disables authentication on mutating routes.
func NewRouter(handler *Handler, router *mux.Router, apiSecret string) *Router {
	return &Router{
		handler:   handler,
		router:    router,
		apiSecret: apiSecret,
	}
}

// Handler exposes the underlying mux for http.ListenAndServe.
func (r *Router) Handler() http.Handler {
	return r.router
}

// RegisterRoutes attaches every route. Mutating routes go through the auth
// middleware when a secret is configured.
func (r *Router) RegisterRoutes() {
	protect := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(r.apiSecret, h)
	}

	r.router.Handle("/v1/menu", protect(r.handler.GenerateMenu)).Methods("POST")
	r.router.HandleFunc("/v1/menu/current", r.handler.GetCurrentMenu).Methods("GET")
	r.router.Handle("/v1/menu/{day}/{slot}", protect(r.handler.SubstituteMeal)).Methods("PUT")
	r.router.HandleFunc("/v1/menu/{day}/{slot}/alternatives", r.handler.GetAlternatives).Methods("GET")

	r.router.HandleFunc("/v1/shopping-list", r.handler.GetShoppingList).Methods("GET")
	r.router.HandleFunc("/v1/shopping-list/text", r.handler.GetShoppingListText).Methods("GET")
	r.router.Handle("/v1/shopping-list/purchased", protect(r.handler.MarkPurchased)).Methods("PUT")
	r.router.Handle("/v1/shopping-list/purchased", protect(r.handler.ResetPurchases)).Methods("DELETE")

	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")
}
