package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"wine-explorer/models"
	"wine-explorer/search"
	services "wine-explorer/service"
	"wine-explorer/state"
	"wine-explorer/util"
)

const (
	LIMIT_QUERY_ARG = "limit"
	QUERY_ARG       = "q"
	MODE_QUERY_ARG  = "mode"
	PAGE_QUERY_ARG  = "page"
	NAME_QUERY_ARG  = "name"
	FIND_QUERY_ARG  = "find"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

type WineHandler struct {
	wineService   *services.WineService
	searchService *services.SearchService
}

func NewWineHandler(wineService *services.WineService, searchService *services.SearchService) *WineHandler {
	return &WineHandler{
		wineService:   wineService,
		searchService: searchService,
	}
}

// Ping handles GET /ping
func (h *WineHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// GetWines handles GET /v1/wines?limit=N
func (h *WineHandler) GetWines(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	catalog, err := h.wineService.LoadCatalog(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// FilterWines handles POST /v1/wines/filter?limit=N with a FilterSpec body.
// Fields missing from the body keep their defaults.
func (h *WineHandler) FilterWines(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	spec := models.DefaultFilterSpec()
	if err := decodeBody(w, r, &spec); err != nil {
		writeBadRequest(w, "Invalid filter body: "+err.Error())
		return
	}
	res, err := h.wineService.FetchFiltered(r.Context(), spec, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SearchWines handles GET /v1/wines/search?q=...&mode=local|remote
func (h *WineHandler) SearchWines(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	query := vals.Get(QUERY_ARG)
	if strings.TrimSpace(query) == "" {
		writeJSON(w, http.StatusOK, models.WineCollection{Total: 0, Wines: []models.Wine{}})
		return
	}

	switch mode := vals.Get(MODE_QUERY_ARG); mode {
	case "", services.SearchModeLocal:
		catalog, err := h.wineService.LoadCatalog(r.Context(), 0)
		if err != nil {
			writeError(w, err)
			return
		}
		hits := h.searchService.Local(catalog.Wines, query)
		writeJSON(w, http.StatusOK, models.WineCollection{Total: len(hits), Wines: hits})
	case services.SearchModeRemote:
		page := 1
		if p := vals.Get(PAGE_QUERY_ARG); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				writeBadRequest(w, "Invalid argument "+PAGE_QUERY_ARG)
				return
			}
			page = n
		}
		res, err := h.searchService.Remote(r.Context(), query, page)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.WineCollection{Total: res.Total, Wines: res.Wines})
	default:
		writeBadRequest(w, "Invalid argument "+MODE_QUERY_ARG+": "+mode)
	}
}

// CompareWines handles POST /v1/wines/compare with {"ids": [...]}.
func (h *WineHandler) CompareWines(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, "Invalid compare body: "+err.Error())
		return
	}
	if len(req.IDs) == 0 {
		writeBadRequest(w, "ids must not be empty")
		return
	}
	page, err := h.wineService.Compare(r.Context(), req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// CompareChart handles GET /v1/wines/compare/chart?name=a&name=b and replies
// with a radar chart page.
func (h *WineHandler) CompareChart(w http.ResponseWriter, r *http.Request) {
	names := r.URL.Query()[NAME_QUERY_ARG]
	if len(names) == 0 {
		writeBadRequest(w, "at least one "+NAME_QUERY_ARG+" is required")
		return
	}

	selection := state.NewCompareSelection()
	for _, name := range names {
		if selection.Contains(name) {
			continue
		}
		if _, err := selection.Toggle(name); err != nil {
			writeBadRequest(w, err.Error())
			return
		}
	}

	catalog, err := h.wineService.LoadCatalog(r.Context(), 0)
	if err != nil {
		writeError(w, err)
		return
	}
	wines := selection.Resolve(catalog.Wines)
	if len(wines) == 0 {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no matching wines"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderComparisonRadar(w, wines); err != nil {
		log.Printf("[WineHandler] Error rendering comparison chart: %v", err)
	}
}

// GetFilterOptions handles GET /v1/filter-options?find=... Without find the
// backend catalog is returned as is; with it every list is narrowed to the
// entries matching find.
func (h *WineHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.wineService.GetFilterOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if find := r.URL.Query().Get(FIND_QUERY_ARG); strings.TrimSpace(find) != "" {
		options = search.SuggestFilterOptions(find, options, 0)
	}
	writeJSON(w, http.StatusOK, options)
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := r.URL.Query().Get(LIMIT_QUERY_ARG)
	if s == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 1 {
		writeBadRequest(w, "Invalid argument "+LIMIT_QUERY_ARG)
		return 0, false
	}
	return limit, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeError maps caller mistakes to 400 and everything else, transport
// failures included, to a retryable 502.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidRange) || errors.Is(err, services.ErrInvalidLimit) {
		writeBadRequest(w, err.Error())
		return
	}
	log.Printf("[WineHandler] Upstream error: %v", err)
	writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error(), Retryable: true})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("[WineHandler] Error encoding response:", err)
	}
}
