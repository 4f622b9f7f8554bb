package browser

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/epl-stats/internal/platform/resilience"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

// Page is a single Chrome tab.
type Page struct {
	ctx     context.Context
	timeout time.Duration
	breaker *resilience.CircuitBreaker
}

var _ usecase.Page = (*Page)(nil)

func (p *Page) Goto(ctx context.Context, url string) error {
	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		return p.run(ctx, "navigate to "+url, chromedp.Navigate(url))
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return crerr.Mark(crerr.Wrapf(err, "navigate to %s", url), usecase.ErrDependencyUnavailable)
	}
	return err
}

func (p *Page) WaitForSelector(ctx context.Context, selector string) error {
	return p.run(ctx, "wait for "+selector, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (p *Page) Fill(ctx context.Context, selector, text string) error {
	return p.run(ctx, "fill "+selector,
		chromedp.SetValue(selector, "", chromedp.ByQuery),
		chromedp.SendKeys(selector, text, chromedp.ByQuery),
	)
}

func (p *Page) Click(ctx context.Context, selector string) error {
	return p.run(ctx, "click "+selector, chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible))
}

func (p *Page) PressKey(ctx context.Context, key string) error {
	return p.run(ctx, "press "+key, chromedp.KeyEvent(keyFor(key)))
}

func (p *Page) Content(ctx context.Context) (string, error) {
	var markup string
	if err := p.run(ctx, "read content", chromedp.OuterHTML("html", &markup, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return markup, nil
}

// run executes actions on the tab, bounded by the page timeout and by ctx.
// Caller cancellation is returned as is; every other failure is an upstream
// failure.
func (p *Page) run(ctx context.Context, op string, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return crerr.Mark(crerr.Wrapf(err, "browser: %s", op), usecase.ErrUpstream)
	}
	return nil
}

func keyFor(key string) string {
	switch key {
	case usecase.KeyEnter:
		return kb.Enter
	default:
		return key
	}
}
