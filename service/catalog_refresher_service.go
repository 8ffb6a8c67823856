package services

import (
	"context"
	"log"
	"time"

	"wine-explorer/dao/redis"
)

// CatalogRefresherService keeps cached catalogs warm by re-aggregating every
// cached limit on a fixed interval.
type CatalogRefresherService struct {
	wineDao     *redis.RedisWineDAO
	wineService *WineService
}

func NewCatalogRefresherService(
	wineDao *redis.RedisWineDAO,
	wineService *WineService,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		wineDao:     wineDao,
		wineService: wineService,
	}
}

// StartPeriodicJob refreshes until ctx is done.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CatalogRefresherService] Stopping periodic catalog refresher job.")
			return
		case <-ticker.C:
			log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
			if err := cr.RefreshCachedCatalogs(ctx); err != nil {
				log.Printf("[CatalogRefresherService] RefreshCachedCatalogs returned error: %v", err)
			} else {
				log.Println("[CatalogRefresherService] RefreshCachedCatalogs completed successfully.")
			}
		}
	}
}

// RefreshCachedCatalogs re-aggregates each cached limit (the configured
// catalog limit at minimum) and refetches the filter options. A failing
// limit is logged and skipped.
func (cr *CatalogRefresherService) RefreshCachedCatalogs(ctx context.Context) error {
	limits, err := cr.wineDao.ListCachedCatalogLimits()
	if err != nil {
		log.Printf("[CatalogRefresherService] Error listing cached catalogs: %v", err)
		return err
	}
	if len(limits) == 0 {
		limits = []int{cr.wineService.CatalogLimit()}
	}
	log.Printf("[CatalogRefresherService] Refreshing %d cached catalogs", len(limits))

	for _, limit := range limits {
		catalog, err := cr.wineService.RefreshCatalog(ctx, limit)
		if err != nil {
			log.Printf("[CatalogRefresherService] Refresh failed for limit %d: %v", limit, err)
			continue
		}
		log.Printf("[CatalogRefresherService] Catalog for limit %d refreshed with %d wines", limit, len(catalog.Wines))
	}

	options, err := cr.wineService.winesApi.GetFilterOptions(ctx)
	if err != nil {
		log.Printf("[CatalogRefresherService] GetFilterOptions failed: %v", err)
		return nil
	}
	if err := cr.wineDao.SetFilterOptions(options); err != nil {
		log.Printf("[CatalogRefresherService] SetFilterOptions failed: %v", err)
	}
	return nil
}
