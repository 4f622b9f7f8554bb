package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const (
	FixturesCacheKey = "epl_fixtures"
	ResultsCacheKey  = "epl_results"
)

type MatchService struct {
	opener   PageOpener
	site     SiteLayout
	logger   *logging.Logger
	fixtures cache.Producer[Page, struct{}, []fixture.Fixture]
	results  cache.Producer[Page, struct{}, []fixture.Result]
}

func NewMatchService(opener PageOpener, site SiteLayout, results *cache.ResultCache, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &MatchService{
		opener: opener,
		site:   site,
		logger: logger.With("component", "match_service"),
	}
	s.fixtures = cache.Memoize(results, cache.StaticKey[struct{}](FixturesCacheKey), s.scrapeFixtures)
	s.results = cache.Memoize(results, cache.StaticKey[struct{}](ResultsCacheKey), s.scrapeResults)
	return s
}

func (s *MatchService) Fixtures(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Fixtures")
	defer span.End()

	page := newLazyPage(s.opener)
	defer page.Close()

	items, err := s.fixtures(ctx, page, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return items, nil
}

func (s *MatchService) Results(ctx context.Context) ([]fixture.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Results")
	defer span.End()

	page := newLazyPage(s.opener)
	defer page.Close()

	items, err := s.results(ctx, page, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("results: %w", err)
	}
	return items, nil
}

func (s *MatchService) scrapeFixtures(ctx context.Context, page Page, _ struct{}) ([]fixture.Fixture, error) {
	doc, err := openTabbedPage(ctx, page, s.site, s.site.FixturesURL, s.site.MatchesReady, s.logger)
	if err != nil {
		return nil, err
	}
	items := extraction.ParseFixtures(doc, s.site.Fixtures)
	s.logger.DebugContext(ctx, "fixtures scraped", "count", len(items))
	return items, nil
}

func (s *MatchService) scrapeResults(ctx context.Context, page Page, _ struct{}) ([]fixture.Result, error) {
	doc, err := openTabbedPage(ctx, page, s.site, s.site.ResultsURL, s.site.MatchesReady, s.logger)
	if err != nil {
		return nil, err
	}
	items := extraction.ParseResults(doc, s.site.Results)
	s.logger.DebugContext(ctx, "results scraped", "count", len(items))
	return items, nil
}
