package app

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "epl-stats-test",
		HTTPAddr:           ":0",
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheBackend:       config.CacheBackendMemory,
		SiteBaseURL:        "https://example.test",
		WarmupWorkers:      1,
	}
}

func TestSiteLayout_ResolvesPaths(t *testing.T) {
	t.Parallel()

	site, err := config.LoadSite("", "https://example.test/")
	if err != nil {
		t.Fatalf("load site: %v", err)
	}

	layout := siteLayout(site)
	if layout.PlayersURL != site.URL(site.Paths.Players) {
		t.Fatalf("unexpected players url %q", layout.PlayersURL)
	}
	if layout.SearchInput != site.Navigation.SearchInput || layout.SearchInput == "" {
		t.Fatalf("search input not carried over: %q", layout.SearchInput)
	}
	if layout.Listing.Container != site.Listing.Container {
		t.Fatalf("listing selectors not carried over")
	}
}

func TestNewRuntime_MemoryCache(t *testing.T) {
	t.Parallel()

	rt, err := NewRuntime(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			t.Fatalf("close runtime: %v", err)
		}
	}()

	if rt.Cache == nil {
		t.Fatalf("expected a result cache")
	}
	if rt.PlayerStats == nil || rt.Table == nil || rt.Matches == nil || rt.Warmup == nil {
		t.Fatalf("expected every service to be built")
	}

	srv, err := NewHTTPServer(rt)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	if srv.Handler == nil {
		t.Fatalf("expected a router")
	}
}

func TestNewRuntime_CacheDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CacheEnabled = false
	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer rt.Close()

	if rt.Cache != nil {
		t.Fatalf("expected no result cache")
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer rt.Close()

	if _, err := NewHTTPServer(rt); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewRuntime_UnreachableRedisOnlyWarns(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CacheBackend = config.CacheBackendRedis
	cfg.RedisAddr = "127.0.0.1:1"
	cfg.RedisKeyPrefix = "epl:"
	cfg.RedisTimeout = 100 * time.Millisecond

	core, logs := observer.New(logging.LevelWarn)
	rt, err := NewRuntime(context.Background(), cfg, logging.FromZap(zap.New(core)))
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer func() { _ = rt.Close() }()

	if rt.Cache == nil {
		t.Fatalf("expected a redis backed result cache")
	}
	warned := logs.FilterMessage("redis not reachable, cache lookups will miss").All()
	if len(warned) != 1 {
		t.Fatalf("expected one redis warning, got %d", len(warned))
	}
	if got := warned[0].ContextMap()["addr"]; got != "127.0.0.1:1" {
		t.Fatalf("unexpected addr field %v", got)
	}
}
