package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const LeagueTableCacheKey = "epl_table"

type LeagueTableService struct {
	opener PageOpener
	site   SiteLayout
	logger *logging.Logger
	table  cache.Producer[Page, struct{}, []leaguestanding.TableRow]
}

func NewLeagueTableService(opener PageOpener, site SiteLayout, results *cache.ResultCache, logger *logging.Logger) *LeagueTableService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &LeagueTableService{
		opener: opener,
		site:   site,
		logger: logger.With("component", "league_table_service"),
	}
	s.table = cache.Memoize(results, cache.StaticKey[struct{}](LeagueTableCacheKey), s.scrape)
	return s
}

func (s *LeagueTableService) Table(ctx context.Context) ([]leaguestanding.TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueTableService.Table")
	defer span.End()

	page := newLazyPage(s.opener)
	defer page.Close()

	rows, err := s.table(ctx, page, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("league table: %w", err)
	}
	return rows, nil
}

func (s *LeagueTableService) scrape(ctx context.Context, page Page, _ struct{}) ([]leaguestanding.TableRow, error) {
	doc, err := openTabbedPage(ctx, page, s.site, s.site.TablesURL, s.site.TableReady, s.logger)
	if err != nil {
		return nil, err
	}
	rows, err := extraction.ParseLeagueTable(doc, s.site.Table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	s.logger.DebugContext(ctx, "league table scraped", "rows", len(rows))
	return rows, nil
}
