package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
	"github.com/riskibarqy/epl-stats/internal/extraction"
)

type extractOptions struct {
	file        string
	selectors   string
	name        string
	position    string
	nationality string
}

// newExtractCommand runs the player extraction on a saved stats page, which
// is how selector changes get checked without a browser.
func newExtractCommand(_ *rootOptions) *cobra.Command {
	opts := extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract --file page.html",
		Short: "Extracts player stats from a saved stats page.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := opts.run()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stats)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "Path to the saved stats page.")
	flags.StringVar(&opts.selectors, "selectors", "", "Site selectors YAML overlay. Defaults to SITE_SELECTORS_FILE.")
	flags.StringVar(&opts.name, "name", "", "Player name to put on the record.")
	flags.StringVar(&opts.position, "position", "", "Player position to put on the record.")
	flags.StringVar(&opts.nationality, "nationality", "", "Player nationality to put on the record.")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (o extractOptions) run() (playerstats.PlayerStats, error) {
	selectors := strings.TrimSpace(o.selectors)
	if selectors == "" {
		selectors = strings.TrimSpace(os.Getenv("SITE_SELECTORS_FILE"))
	}
	site, err := config.LoadSite(selectors, "")
	if err != nil {
		return playerstats.PlayerStats{}, err
	}
	extractor, err := extraction.NewPlayerExtractor(site.Player)
	if err != nil {
		return playerstats.PlayerStats{}, err
	}

	raw, err := os.ReadFile(o.file)
	if err != nil {
		return playerstats.PlayerStats{}, fmt.Errorf("read page: %w", err)
	}
	return extractor.ExtractMarkup(string(raw), playerstats.Listing{
		Name:        o.name,
		Position:    o.position,
		Nationality: o.nationality,
	})
}
