package usecase

import (
	"context"
	"errors"
	"sync"
)

// Page is one browser tab. Every call blocks until the browser answers or ctx
// ends.
type Page interface {
	Goto(ctx context.Context, url string) error
	WaitForSelector(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error
	Click(ctx context.Context, selector string) error
	PressKey(ctx context.Context, key string) error
	Content(ctx context.Context) (string, error)
}

// PageOpener hands out tabs. release must be called once the tab is no longer
// needed.
type PageOpener interface {
	OpenPage(ctx context.Context) (Page, func(), error)
}

const KeyEnter = "Enter"

var errPageClosed = errors.New("page already closed")

// lazyPage opens a tab on first use so that cache hits never touch the
// browser. Retain holds keep the tab open past Close until they are released.
type lazyPage struct {
	opener PageOpener

	mu      sync.Mutex
	page    Page
	release func()
	holds   int
	closed  bool
}

func newLazyPage(opener PageOpener) *lazyPage {
	return &lazyPage{opener: opener}
}

func (p *lazyPage) get(ctx context.Context) (Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.page != nil {
		return p.page, nil
	}
	if p.closed && p.holds == 0 {
		return nil, errPageClosed
	}
	page, release, err := p.opener.OpenPage(ctx)
	if err != nil {
		return nil, err
	}
	p.page = page
	p.release = release
	return page, nil
}

// Retain implements cache.Retainer.
func (p *lazyPage) Retain() func() {
	p.mu.Lock()
	p.holds++
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.holds--
			p.releaseIfIdleLocked()
		})
	}
}

func (p *lazyPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.releaseIfIdleLocked()
}

func (p *lazyPage) releaseIfIdleLocked() {
	if !p.closed || p.holds > 0 {
		return
	}
	if p.release != nil {
		p.release()
	}
	p.page = nil
	p.release = nil
}

func (p *lazyPage) Goto(ctx context.Context, url string) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.Goto(ctx, url)
}

func (p *lazyPage) WaitForSelector(ctx context.Context, selector string) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.WaitForSelector(ctx, selector)
}

func (p *lazyPage) Fill(ctx context.Context, selector, text string) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.Fill(ctx, selector, text)
}

func (p *lazyPage) Click(ctx context.Context, selector string) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.Click(ctx, selector)
}

func (p *lazyPage) PressKey(ctx context.Context, key string) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.PressKey(ctx, key)
}

func (p *lazyPage) Content(ctx context.Context) (string, error) {
	page, err := p.get(ctx)
	if err != nil {
		return "", err
	}
	return page.Content(ctx)
}
