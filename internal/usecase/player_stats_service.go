package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const MaxPlayerNameLength = 100

type PlayerStatsService struct {
	opener    PageOpener
	site      SiteLayout
	extractor *extraction.PlayerExtractor
	logger    *logging.Logger
	search    func(context.Context, Page, string) (cache.Batch[playerstats.PlayerStats], error)
}

func NewPlayerStatsService(
	opener PageOpener,
	site SiteLayout,
	extractor *extraction.PlayerExtractor,
	results *cache.ResultCache,
	logger *logging.Logger,
) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &PlayerStatsService{
		opener:    opener,
		site:      site,
		extractor: extractor,
		logger:    logger.With("component", "player_stats_service"),
	}
	s.search = cache.MemoizeStream(results, cache.DerivedKey(cache.PlayerStatsKey), s.stream)
	return s
}

// Search returns the stats of every player the site lists for name, in
// listing order.
func (s *PlayerStatsService) Search(ctx context.Context, name string) ([]playerstats.PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Search")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxPlayerNameLength {
		return nil, fmt.Errorf("%w: player name is longer than %d characters", ErrInvalidInput, MaxPlayerNameLength)
	}

	page := newLazyPage(s.opener)
	defer page.Close()

	batch, err := s.search(ctx, page, name)
	if err != nil {
		return nil, fmt.Errorf("search player stats: %w", err)
	}
	items, err := batch.Materialize()
	if err != nil {
		return nil, fmt.Errorf("extract player stats: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no players match %q", ErrNotFound, name)
	}
	return items, nil
}

// stream runs the site search eagerly and returns a sequence that visits each
// listed player's stats page as it is iterated.
func (s *PlayerStatsService) stream(ctx context.Context, page Page, name string) (iter.Seq2[playerstats.PlayerStats, error], error) {
	listings, err := s.listPlayers(ctx, page, name)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "player search listed", "name", name, "count", len(listings))

	return func(yield func(playerstats.PlayerStats, error) bool) {
		for _, listing := range listings {
			stats, err := s.playerStats(ctx, page, listing)
			if err != nil {
				yield(playerstats.PlayerStats{}, err)
				return
			}
			if !yield(stats, nil) {
				return
			}
		}
	}, nil
}

func (s *PlayerStatsService) listPlayers(ctx context.Context, page Page, name string) ([]playerstats.Listing, error) {
	if err := page.Goto(ctx, s.site.PlayersURL); err != nil {
		return nil, fmt.Errorf("open players page: %w", err)
	}
	acceptCookies(ctx, page, s.site.CookieAccept, s.logger)

	if err := page.WaitForSelector(ctx, s.site.SearchInput); err != nil {
		return nil, fmt.Errorf("wait for player search: %w", err)
	}
	if err := page.Fill(ctx, s.site.SearchInput, name); err != nil {
		return nil, fmt.Errorf("fill player search: %w", err)
	}
	if err := page.PressKey(ctx, KeyEnter); err != nil {
		return nil, fmt.Errorf("submit player search: %w", err)
	}
	if err := page.WaitForSelector(ctx, s.site.ListingReady); err != nil {
		return nil, fmt.Errorf("wait for player listing: %w", err)
	}

	doc, err := pageDocument(ctx, page)
	if err != nil {
		return nil, err
	}
	listings, err := extraction.ParseListing(doc, s.site.Listing, s.site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return listings, nil
}

func (s *PlayerStatsService) playerStats(ctx context.Context, page Page, listing playerstats.Listing) (playerstats.PlayerStats, error) {
	if listing.Link == "" {
		return playerstats.PlayerStats{}, fmt.Errorf("%w: player %q has no stats link", ErrUpstream, listing.Name)
	}
	if err := page.Goto(ctx, listing.Link); err != nil {
		return playerstats.PlayerStats{}, fmt.Errorf("open stats page for %s: %w", listing.Name, err)
	}
	acceptCookies(ctx, page, s.site.CookieAccept, s.logger)
	if s.site.StatsReady != "" {
		if err := page.WaitForSelector(ctx, s.site.StatsReady); err != nil {
			return playerstats.PlayerStats{}, fmt.Errorf("wait for stats of %s: %w", listing.Name, err)
		}
	}

	doc, err := pageDocument(ctx, page)
	if err != nil {
		return playerstats.PlayerStats{}, err
	}
	return s.extractor.Extract(doc, listing)
}
