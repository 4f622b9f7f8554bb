package postgres

import "time"

type matchResultTableModel struct {
	ID        int64     `db:"id"`
	RunID     string    `db:"run_id"`
	Ordinal   int       `db:"ordinal"`
	HomeTeam  string    `db:"home_team"`
	AwayTeam  string    `db:"away_team"`
	Score     string    `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

type matchResultInsertModel struct {
	RunID    string `db:"run_id"`
	Ordinal  int    `db:"ordinal"`
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
	Score    string `db:"score"`
}

// Table cells are stored as scraped. A blank cell stays blank rather than
// turning into zero.
type leagueTableSnapshotTableModel struct {
	ID             int64     `db:"id"`
	RunID          string    `db:"run_id"`
	Position       string    `db:"position"`
	Club           string    `db:"club"`
	Played         string    `db:"played"`
	Won            string    `db:"won"`
	Drawn          string    `db:"drawn"`
	Lost           string    `db:"lost"`
	GoalsFor       string    `db:"goals_for"`
	GoalsAgainst   string    `db:"goals_against"`
	GoalDifference string    `db:"goal_difference"`
	Points         string    `db:"points"`
	Form           string    `db:"form"`
	Ordinal        int       `db:"ordinal"`
	CreatedAt      time.Time `db:"created_at"`
}

type leagueTableSnapshotInsertModel struct {
	RunID          string `db:"run_id"`
	Ordinal        int    `db:"ordinal"`
	Position       string `db:"position"`
	Club           string `db:"club"`
	Played         string `db:"played"`
	Won            string `db:"won"`
	Drawn          string `db:"drawn"`
	Lost           string `db:"lost"`
	GoalsFor       string `db:"goals_for"`
	GoalsAgainst   string `db:"goals_against"`
	GoalDifference string `db:"goal_difference"`
	Points         string `db:"points"`
	Form           string `db:"form"`
}
