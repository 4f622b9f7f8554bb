package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/epl-stats/internal/platform/logging"
	"github.com/riskibarqy/epl-stats/internal/platform/resilience"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

const (
	defaultTimeout = 15 * time.Second
	acceptLanguage = "en-GB,en;q=0.9"
)

type Config struct {
	Headless  bool
	Timeout   time.Duration
	ExecPath  string
	UserAgent string
	Circuit   resilience.CircuitBreakerConfig
}

// Browser owns one Chrome process and hands out tabs. Chrome is started on the
// first OpenPage call and restarted on the next call if it fails to launch.
type Browser struct {
	cfg     Config
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker

	mu            sync.Mutex
	browserCtx    context.Context
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
}

func New(cfg Config, logger *logging.Logger) *Browser {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("component", "browser")

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.Circuit)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("browser circuit state changed", "from", string(from), "to", string(to))
	})

	return &Browser{
		cfg:     cfg,
		logger:  logger,
		breaker: breaker,
	}
}

func (b *Browser) CircuitState() resilience.CircuitState {
	if b.breaker == nil {
		return resilience.CircuitStateClosed
	}
	return b.breaker.State()
}

// OpenPage opens a new tab. The returned release func closes it.
func (b *Browser) OpenPage(ctx context.Context) (usecase.Page, func(), error) {
	browserCtx, err := b.start()
	if err != nil {
		return nil, nil, crerr.Mark(crerr.Wrap(err, "start browser"), usecase.ErrDependencyUnavailable)
	}

	tabCtx, closeTab := chromedp.NewContext(browserCtx)
	// The first Run on a context creates the tab, and cancelling the context
	// of that call would close it again, so it gets no timeout.
	if err := chromedp.Run(tabCtx); err != nil {
		closeTab()
		return nil, nil, crerr.Mark(crerr.Wrap(err, "open tab"), usecase.ErrUpstream)
	}

	page := &Page{
		ctx:     tabCtx,
		timeout: b.cfg.Timeout,
		breaker: b.breaker,
	}
	err = page.run(ctx, "open tab",
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": acceptLanguage}),
	)
	if err != nil {
		closeTab()
		return nil, nil, err
	}
	return page, closeTab, nil
}

func (b *Browser) start() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browserCtx != nil {
		if b.browserCtx.Err() == nil {
			return b.browserCtx, nil
		}
		b.shutdownLocked()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	if b.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.cfg.ExecPath))
	}
	if b.cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(b.cfg.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, v ...any) {
			b.logger.Debug("chromedp", "message", fmt.Sprintf(format, v...))
		}),
		chromedp.WithErrorf(func(format string, v ...any) {
			b.logger.Warn("chromedp error", "message", fmt.Sprintf(format, v...))
		}),
	)

	// Run with no actions launches the browser.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, err
	}

	b.browserCtx = browserCtx
	b.allocCancel = allocCancel
	b.browserCancel = browserCancel
	b.logger.Info("browser started", "headless", b.cfg.Headless)
	return browserCtx, nil
}

// Close shuts Chrome down. Tabs still open are closed with it.
func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdownLocked()
}

func (b *Browser) shutdownLocked() {
	if b.browserCancel != nil {
		b.browserCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
	b.browserCtx = nil
	b.browserCancel = nil
	b.allocCancel = nil
}
