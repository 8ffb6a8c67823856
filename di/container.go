package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"wine-explorer/api"
	"wine-explorer/api/opener"
	"wine-explorer/config"
	"wine-explorer/dao/redis"
	"wine-explorer/db"
	"wine-explorer/metrics"
	"wine-explorer/search"
	"wine-explorer/server"
	"wine-explorer/server/handlers"
	services "wine-explorer/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	RedisClient             db.RedisClient
	RedisWineDao            *redis.RedisWineDAO
	WinesAPI                opener.WinesAPI
	PageAggregator          *services.PageAggregator
	WineService             *services.WineService
	SearchService           *services.SearchService
	WineHandler             *handlers.WineHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	WineExplorerHttpServer  *server.WineExplorerHttpServer
	CatalogRefresherService *services.CatalogRefresherService
}

// NewContainer initializes and wires up all dependencies. Extra aggregator
// options (a CLI progress bar, say) are applied after the configured ones.
func NewContainer(ctx context.Context, cfg *config.Config, aggregatorOpts ...services.AggregatorOption) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)

	metrics.Register()

	redisClient := newRedisClient(ctx, cfg)

	// Initialize Redis Wine DAO
	redisWineDao := redis.NewRedisWineDAO(redisClient, cfg.CacheTTL)

	// Initialize the wines API - fixture-backed mock outside prod
	var winesApi opener.WinesAPI
	if !cfg.IsProd() {
		mock, err := opener.NewWinesApiClientMockFromFile(cfg.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("load wines fixture: %w", err)
		}
		winesApi = mock
		log.Printf("Using mock wines api (%s)", cfg.FixturePath)
	} else {
		log.Printf("Using prod wines api (%s)", cfg.APIBaseURL)
		httpClient := api.NewHTTPClientWithTimeout(cfg.APIBaseURL, cfg.HTTPTimeout)
		winesApi = opener.NewWinesApiClient(httpClient)
	}

	opts := append([]services.AggregatorOption{
		services.WithConcurrency(cfg.PageConcurrency),
		services.WithPageInterval(cfg.PageInterval),
	}, aggregatorOpts...)
	pageAggregator, err := services.NewPageAggregator(opts...)
	if err != nil {
		return nil, err
	}

	wineService, err := services.NewWineService(redisWineDao, winesApi, pageAggregator, cfg.CatalogLimit)
	if err != nil {
		return nil, err
	}

	searchService := services.NewSearchService(winesApi, search.NewMatcher(cfg.FuzzyThreshold), cfg.SearchDebounce)

	// Initialize wine handler
	wineHandler := handlers.NewWineHandler(wineService, searchService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(wineHandler, muxRouter)

	// initialize wine explorer server
	wineExplorerHttpServer := server.NewWineExplorerHttpServer(router, muxRouter, cfg.ServerAddress)

	catalogRefresherService := services.NewCatalogRefresherService(redisWineDao, wineService)

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisWineDao:            redisWineDao,
		WinesAPI:                winesApi,
		PageAggregator:          pageAggregator,
		WineService:             wineService,
		SearchService:           searchService,
		WineHandler:             wineHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		WineExplorerHttpServer:  wineExplorerHttpServer,
		CatalogRefresherService: catalogRefresherService,
	}, nil
}

// Close releases the search timer and the Redis connection.
func (c *Container) Close() {
	c.SearchService.Stop()
	if closer, ok := c.RedisClient.(*db.GoRedisClient); ok {
		if err := closer.Close(); err != nil {
			log.Printf("[Container] Error closing redis client: %v", err)
		}
	}
}

// newRedisClient connects to Redis when an address is configured and falls
// back to the in-memory client otherwise, or when the server is unreachable.
func newRedisClient(ctx context.Context, cfg *config.Config) db.RedisClient {
	if cfg.RedisAddress == "" {
		log.Printf("Using in-memory cache")
		return db.NewMemoryRedisClient(ctx)
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient, err := db.NewGoRedisClient(ctx, redisInternalClient)
	if err != nil {
		log.Printf("Failed to connect to Redis at %s, using in-memory cache: %v", cfg.RedisAddress, err)
		_ = redisInternalClient.Close()
		return db.NewMemoryRedisClient(ctx)
	}
	log.Printf("Using redis cache at %s", cfg.RedisAddress)
	return redisClient
}
