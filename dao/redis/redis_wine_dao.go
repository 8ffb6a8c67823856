package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"wine-explorer/db"
	"wine-explorer/models"
)

const WINE_CATALOG_KEY_PREFIX_V1 = "wine_catalog_v1:"
const WINE_CATALOG_KEY_FORMAT_V1 = WINE_CATALOG_KEY_PREFIX_V1 + "%d"

// WINE_FILTER_OPTIONS_KEY_V1 caches the backend's filter-options catalog.
const WINE_FILTER_OPTIONS_KEY_V1 = "wine_filter_options_v1"

// RedisWineDAO caches aggregated catalogs and filter options as JSON.
type RedisWineDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisWineDAO stores entries with ttl; zero keeps them until invalidated.
func NewRedisWineDAO(client db.RedisClient, ttl time.Duration) *RedisWineDAO {
	return &RedisWineDAO{client: client, ttl: ttl}
}

// SetCatalog caches the aggregation result for limit.
func (dao *RedisWineDAO) SetCatalog(limit int, catalog *models.WineCollection) error {
	key := fmt.Sprintf(WINE_CATALOG_KEY_FORMAT_V1, limit)
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog for limit %d: %w", limit, err)
	}
	if err := dao.client.Set(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set catalog in redis: %w", err)
	}
	return nil
}

// GetCatalog returns the cached catalog for limit, or nil on a cache miss.
func (dao *RedisWineDAO) GetCatalog(limit int) (*models.WineCollection, error) {
	key := fmt.Sprintf(WINE_CATALOG_KEY_FORMAT_V1, limit)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog from redis: %w", err)
	}
	var catalog models.WineCollection
	if err := json.Unmarshal([]byte(str), &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}
	return &catalog, nil
}

// ListCachedCatalogLimits returns the limits that currently have a cached catalog.
func (dao *RedisWineDAO) ListCachedCatalogLimits() ([]int, error) {
	keys, err := dao.client.Keys(WINE_CATALOG_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog keys: %w", err)
	}
	limits := make([]int, 0, len(keys))
	for _, k := range keys {
		limit, err := strconv.Atoi(strings.TrimPrefix(k, WINE_CATALOG_KEY_PREFIX_V1))
		if err != nil {
			log.Printf("[RedisWineDAO] Skipping unexpected catalog key %s", k)
			continue
		}
		limits = append(limits, limit)
	}
	return limits, nil
}

// InvalidateCatalogs drops every cached catalog and the filter options.
func (dao *RedisWineDAO) InvalidateCatalogs() error {
	limits, err := dao.ListCachedCatalogLimits()
	if err != nil {
		return err
	}
	for _, limit := range limits {
		key := fmt.Sprintf(WINE_CATALOG_KEY_FORMAT_V1, limit)
		if err := dao.client.Del(key); err != nil {
			return fmt.Errorf("failed to delete catalog key %s: %w", key, err)
		}
	}
	if err := dao.client.Del(WINE_FILTER_OPTIONS_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete filter options key: %w", err)
	}
	log.Printf("[RedisWineDAO] Invalidated %d cached catalogs", len(limits))
	return nil
}

func (dao *RedisWineDAO) SetFilterOptions(options *models.FilterOptions) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to marshal filter options: %w", err)
	}
	if err := dao.client.Set(WINE_FILTER_OPTIONS_KEY_V1, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set filter options in redis: %w", err)
	}
	return nil
}

// GetFilterOptions returns the cached options, or nil on a cache miss.
func (dao *RedisWineDAO) GetFilterOptions() (*models.FilterOptions, error) {
	str, err := dao.client.Get(WINE_FILTER_OPTIONS_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get filter options from redis: %w", err)
	}
	var options models.FilterOptions
	if err := json.Unmarshal([]byte(str), &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter options JSON: %w", err)
	}
	return &options, nil
}
