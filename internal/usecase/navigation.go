package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const cookieConsentWait = 3 * time.Second

// acceptCookies dismisses the consent banner when it shows up. Failing to find
// it is not an error.
func acceptCookies(ctx context.Context, page Page, selector string, logger *logging.Logger) {
	if selector == "" {
		return
	}
	waitCtx, cancel := context.WithTimeout(ctx, cookieConsentWait)
	defer cancel()

	if err := page.WaitForSelector(waitCtx, selector); err != nil {
		logger.DebugContext(ctx, "cookie banner not shown", "selector", selector, "error", err)
		return
	}
	if err := page.Click(waitCtx, selector); err != nil {
		logger.DebugContext(ctx, "cookie banner click failed", "selector", selector, "error", err)
	}
}

// openTabbedPage loads url, switches to the first-team tab when one is
// configured and waits for ready before returning the parsed page.
func openTabbedPage(ctx context.Context, page Page, site SiteLayout, url, ready string, logger *logging.Logger) (*goquery.Selection, error) {
	if err := page.Goto(ctx, url); err != nil {
		return nil, fmt.Errorf("open %s: %w", url, err)
	}
	acceptCookies(ctx, page, site.CookieAccept, logger)

	if site.FirstTeamTab != "" {
		if err := page.WaitForSelector(ctx, site.FirstTeamTab); err != nil {
			return nil, fmt.Errorf("wait for first team tab: %w", err)
		}
		if err := page.Click(ctx, site.FirstTeamTab); err != nil {
			return nil, fmt.Errorf("select first team tab: %w", err)
		}
	}
	if ready != "" {
		if err := page.WaitForSelector(ctx, ready); err != nil {
			return nil, fmt.Errorf("wait for %s: %w", ready, err)
		}
	}
	return pageDocument(ctx, page)
}

func pageDocument(ctx context.Context, page Page) (*goquery.Selection, error) {
	markup, err := page.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page content: %w", err)
	}
	doc, err := extraction.ParseDocument(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: parse page: %v", ErrUpstream, err)
	}
	return doc, nil
}
