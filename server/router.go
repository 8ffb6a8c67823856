package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WineRoutes is the handler set the router mounts.
type WineRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetWines(w http.ResponseWriter, r *http.Request)
	FilterWines(w http.ResponseWriter, r *http.Request)
	SearchWines(w http.ResponseWriter, r *http.Request)
	CompareWines(w http.ResponseWriter, r *http.Request)
	CompareChart(w http.ResponseWriter, r *http.Request)
	GetFilterOptions(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	wineHandler WineRoutes
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	wineHandler WineRoutes,
	router *mux.Router) *Router {
	return &Router{
		wineHandler: wineHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware)

	r.router.HandleFunc("/ping", r.wineHandler.Ping).Methods("GET")

	// expects ?limit={count(int)}
	r.router.HandleFunc("/v1/wines", r.wineHandler.GetWines).Methods("GET")
	// expects ?limit={count(int)} and a FilterSpec JSON body
	r.router.HandleFunc("/v1/wines/filter", r.wineHandler.FilterWines).Methods("POST")
	// expects ?q={query}&mode={local|remote}
	r.router.HandleFunc("/v1/wines/search", r.wineHandler.SearchWines).Methods("GET")
	r.router.HandleFunc("/v1/wines/compare", r.wineHandler.CompareWines).Methods("POST")
	// expects ?name={wine name}, repeated up to 5 times
	r.router.HandleFunc("/v1/wines/compare/chart", r.wineHandler.CompareChart).Methods("GET")
	// expects optional ?find={prefix}
	r.router.HandleFunc("/v1/filter-options", r.wineHandler.GetFilterOptions).Methods("GET")

	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
