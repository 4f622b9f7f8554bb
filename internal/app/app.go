package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/infrastructure/browser"
	"github.com/riskibarqy/epl-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
	"github.com/riskibarqy/epl-stats/internal/platform/resilience"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

// Runtime holds the long-lived dependencies shared by the API server and the
// CLI commands.
type Runtime struct {
	Config    config.Config
	Site      config.Site
	Logger    *logging.Logger
	Cache     *cache.ResultCache
	Browser   *browser.Browser
	Extractor *extraction.PlayerExtractor

	PlayerStats *usecase.PlayerStatsService
	Table       *usecase.LeagueTableService
	Matches     *usecase.MatchService
	Warmup      *usecase.WarmupService

	closers []func() error
}

func NewRuntime(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}

	site, err := config.LoadSite(cfg.SiteSelectorsFile, cfg.SiteBaseURL)
	if err != nil {
		return nil, err
	}
	extractor, err := extraction.NewPlayerExtractor(site.Player)
	if err != nil {
		return nil, fmt.Errorf("build player extractor: %w", err)
	}

	rt := &Runtime{
		Config:    cfg,
		Site:      site,
		Logger:    logger,
		Extractor: extractor,
	}

	rt.Cache, err = rt.newResultCache(ctx)
	if err != nil {
		return nil, err
	}

	rt.Browser = browser.New(browser.Config{
		Headless:  cfg.BrowserHeadless,
		Timeout:   cfg.BrowserTimeout,
		ExecPath:  cfg.BrowserExecPath,
		UserAgent: cfg.BrowserUserAgent,
		Circuit: resilience.CircuitBreakerConfig{
			Enabled:          cfg.BrowserCircuitEnabled,
			FailureThreshold: cfg.BrowserCircuitFailureCount,
			OpenTimeout:      cfg.BrowserCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.BrowserCircuitHalfOpenMaxReq,
		},
	}, logger.Named("browser"))
	rt.closers = append(rt.closers, func() error {
		rt.Browser.Close()
		return nil
	})

	layout := siteLayout(site)
	rt.PlayerStats = usecase.NewPlayerStatsService(rt.Browser, layout, extractor, rt.Cache, logger)
	rt.Table = usecase.NewLeagueTableService(rt.Browser, layout, rt.Cache, logger)
	rt.Matches = usecase.NewMatchService(rt.Browser, layout, rt.Cache, logger)
	rt.Warmup = usecase.NewWarmupService(rt.PlayerStats, rt.Table, rt.Matches, cfg.WarmupWorkers, logger)

	return rt, nil
}

// newResultCache returns nil when caching is disabled; every memoized call
// then goes straight to the site.
func (rt *Runtime) newResultCache(ctx context.Context) (*cache.ResultCache, error) {
	cfg := rt.Config
	if !cfg.CacheEnabled {
		rt.Logger.Info("result cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, nil
	}

	var backend cache.Backend
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		client := cache.NewRedisClient(cache.RedisConfig{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.RedisTimeout,
			ReadTimeout:  cfg.RedisTimeout,
			WriteTimeout: cfg.RedisTimeout,
		})
		rt.closers = append(rt.closers, client.Close)
		redisBackend := cache.NewRedisBackend(client, cfg.RedisKeyPrefix)
		pingRedis(ctx, redisBackend, cfg.RedisAddr, cfg.RedisTimeout, rt.Logger)
		backend = redisBackend
	case config.CacheBackendMemory:
		backend = cache.NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.CacheBackend)
	}

	rt.Logger.Info("result cache enabled",
		"backend", cfg.CacheBackend,
		"ttl", cfg.CacheTTL,
		"single_flight", cfg.CacheSingleFlight,
		"materialize_streams", cfg.CacheMaterializeStreams,
		"fill_timeout", cfg.CacheFillTimeout,
	)
	return cache.NewResultCache(backend, cache.Options{
		TTL:                cfg.CacheTTL,
		SingleFlight:       cfg.CacheSingleFlight,
		MaterializeStreams: cfg.CacheMaterializeStreams,
		FillTimeout:        cfg.CacheFillTimeout,
		Logger:             rt.Logger,
	}), nil
}

// pingRedis only warns: an unreachable redis degrades every lookup to a miss
// and the service keeps scraping.
func pingRedis(ctx context.Context, backend *cache.RedisBackend, addr string, timeout time.Duration, logger *logging.Logger) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := backend.Ping(pingCtx); err != nil {
		logger.WarnContext(ctx, "redis not reachable, cache lookups will miss", "addr", addr, "error", err)
	}
}

func (rt *Runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}

func NewHTTPServer(rt *Runtime) (*http.Server, error) {
	cfg := rt.Config
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var stats httpapi.CacheStatsReader
	if rt.Cache != nil {
		stats = rt.Cache
	}
	handler := httpapi.NewHandler(rt.PlayerStats, rt.Table, rt.Matches, stats, rt.Logger)
	router := httpapi.NewRouter(handler, rt.Logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
