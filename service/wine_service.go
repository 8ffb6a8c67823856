package services

import (
	"context"
	"fmt"
	"log"

	"wine-explorer/api/opener"
	"wine-explorer/dao/redis"
	"wine-explorer/filter"
	"wine-explorer/metrics"
	"wine-explorer/models"
)

// DefaultCatalogLimit is the initial-load size.
const DefaultCatalogLimit = 10000

const (
	cacheKindCatalog = "catalog"
	cacheKindOptions = "filter_options"
)

// WineService loads catalogs and filtered result sets through the page
// aggregator, with an optional Redis cache in front of the catalog calls.
type WineService struct {
	wineDao      *redis.RedisWineDAO
	winesApi     opener.WinesAPI
	aggregator   *PageAggregator
	catalogLimit int
}

// NewWineService builds the service. wineDao may be nil to disable caching.
func NewWineService(
	wineDao *redis.RedisWineDAO,
	winesApi opener.WinesAPI,
	aggregator *PageAggregator,
	catalogLimit int) (*WineService, error) {

	if winesApi == nil {
		return nil, ErrAPIRequired
	}
	if aggregator == nil {
		var err error
		if aggregator, err = NewPageAggregator(); err != nil {
			return nil, err
		}
	}
	if catalogLimit <= 0 {
		catalogLimit = DefaultCatalogLimit
	}
	return &WineService{
		wineDao:      wineDao,
		winesApi:     winesApi,
		aggregator:   aggregator,
		catalogLimit: catalogLimit,
	}, nil
}

func (ws *WineService) CatalogLimit() int {
	return ws.catalogLimit
}

// LoadCatalog returns up to limit wines from /wines, or the configured
// catalog limit when limit <= 0. Cache failures are logged and bypassed.
func (ws *WineService) LoadCatalog(ctx context.Context, limit int) (*models.WineCollection, error) {
	if limit <= 0 {
		limit = ws.catalogLimit
	}

	if cached := ws.cachedCatalog(limit); cached != nil {
		return cached, nil
	}

	catalog, err := ws.aggregator.FetchUpTo(ctx, limit, ws.winesApi.GetWines)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if ws.wineDao != nil {
		if err := ws.wineDao.SetCatalog(limit, catalog); err != nil {
			log.Printf("[WineService] Could not cache catalog for limit %d: %v", limit, err)
		}
	}
	return catalog, nil
}

func (ws *WineService) cachedCatalog(limit int) *models.WineCollection {
	if ws.wineDao == nil {
		return nil
	}
	catalog, err := ws.wineDao.GetCatalog(limit)
	switch {
	case err != nil:
		metrics.IncCacheLookup(cacheKindCatalog, metrics.CacheError)
		log.Printf("[WineService] Catalog cache lookup failed for limit %d: %v", limit, err)
		return nil
	case catalog == nil:
		metrics.IncCacheLookup(cacheKindCatalog, metrics.CacheMiss)
		log.Printf("[WineService] Catalog cache miss for limit %d", limit)
		return nil
	default:
		metrics.IncCacheLookup(cacheKindCatalog, metrics.CacheHit)
		return catalog
	}
}

// RefreshCatalog bypasses the cache read and stores a fresh aggregation.
func (ws *WineService) RefreshCatalog(ctx context.Context, limit int) (*models.WineCollection, error) {
	catalog, err := ws.aggregator.FetchUpTo(ctx, limit, ws.winesApi.GetWines)
	if err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}
	if ws.wineDao != nil {
		if err := ws.wineDao.SetCatalog(limit, catalog); err != nil {
			return nil, fmt.Errorf("store refreshed catalog: %w", err)
		}
	}
	return catalog, nil
}

// GetFilterOptions returns the backend's option catalog, cached when possible.
func (ws *WineService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if ws.wineDao != nil {
		cached, err := ws.wineDao.GetFilterOptions()
		switch {
		case err != nil:
			metrics.IncCacheLookup(cacheKindOptions, metrics.CacheError)
			log.Printf("[WineService] Filter options cache lookup failed: %v", err)
		case cached != nil:
			metrics.IncCacheLookup(cacheKindOptions, metrics.CacheHit)
			return cached, nil
		default:
			metrics.IncCacheLookup(cacheKindOptions, metrics.CacheMiss)
		}
	}

	options, err := ws.winesApi.GetFilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get filter options: %w", err)
	}
	if ws.wineDao != nil {
		if err := ws.wineDao.SetFilterOptions(options); err != nil {
			log.Printf("[WineService] Could not cache filter options: %v", err)
		}
	}
	return options, nil
}

// FetchFiltered sends the server-side part of spec to /wines/filter,
// aggregates up to limit results, then applies spec locally so subregion
// and aroma take effect. When a local-only dimension is active Total is the
// number of wines kept; otherwise it is the server's total.
func (ws *WineService) FetchFiltered(ctx context.Context, spec models.FilterSpec, limit int) (*models.WineCollection, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = ws.catalogLimit
	}

	fetch := func(ctx context.Context, page int) (*models.WinePage, error) {
		return ws.winesApi.FilterWines(ctx, filter.ToRequest(spec, page))
	}
	res, err := ws.aggregator.FetchUpTo(ctx, limit, fetch)
	if err != nil {
		return nil, fmt.Errorf("fetch filtered wines: %w", err)
	}

	wines := filter.Apply(res.Wines, spec)
	total := res.Total
	if len(spec.Subregions) > 0 || len(spec.Aromas) > 0 {
		total = len(wines)
	}
	log.Printf("[WineService] Filter kept %d of %d fetched wines", len(wines), len(res.Wines))
	return &models.WineCollection{Total: total, Wines: wines}, nil
}

// Compare fetches the wines with the given ids.
func (ws *WineService) Compare(ctx context.Context, ids []string) (*models.WinePage, error) {
	page, err := ws.winesApi.CompareWines(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("compare wines: %w", err)
	}
	return page, nil
}
