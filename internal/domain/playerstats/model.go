package playerstats

// AttackStats holds a player's attacking numbers as rendered on the stats page.
// Values are strings; "N/A" marks a stat the page did not provide.
type AttackStats struct {
	Goals              string `json:"goals"`
	GoalsPerMatch      string `json:"goals_per_match"`
	HeadedGoals        string `json:"headed_goals"`
	GoalsWithLeftFoot  string `json:"goals_with_left_foot"`
	GoalsWithRightFoot string `json:"goals_with_right_foot"`
	PenaltiesScored    string `json:"penalties_scored"`
	FreekicksScored    string `json:"freekicks_scored"`
	Shots              string `json:"shots"`
	ShotsOnTarget      string `json:"shots_on_target"`
	ShootingAccuracy   string `json:"shooting_accuracy"`
	HitWoodwork        string `json:"hit_woodwork"`
	BigChancesMissed   string `json:"big_chances_missed"`
}

type TeamPlayStats struct {
	Assists           string `json:"assists"`
	Passes            string `json:"passes"`
	PassesPerMatch    string `json:"passes_per_match"`
	BigChancesCreated string `json:"big_chances_created"`
	Crosses           string `json:"crosses"`
	CrossAccuracy     string `json:"cross_accuracy"`
	ThroughBalls      string `json:"through_balls"`
	AccurateLongBalls string `json:"accurate_long_balls"`
}

type DisciplineStats struct {
	YellowCards string `json:"yellow_cards"`
	RedCards    string `json:"red_cards"`
	Fouls       string `json:"fouls"`
	Offside     string `json:"offside"`
}

type DefenceStats struct {
	Tackles             string `json:"tackles"`
	TackleSuccess       string `json:"tackle_success"`
	LastManTackles      string `json:"last_man_tackles"`
	BlockedShots        string `json:"blocked_shots"`
	Interceptions       string `json:"interceptions"`
	Clearances          string `json:"clearances"`
	HeadedClearance     string `json:"headed_clearance"`
	ClearancesOffLine   string `json:"clearances_off_line"`
	Recoveries          string `json:"recoveries"`
	DuelsWon            string `json:"duels_won"`
	DuelsLost           string `json:"duels_lost"`
	Successful5050s     string `json:"successful_50_50s"`
	AerialBattlesWon    string `json:"aerial_battles_won"`
	AerialBattlesLost   string `json:"aerial_battles_lost"`
	OwnGoals            string `json:"own_goals"`
	ErrorsLeadingToGoal string `json:"errors_leading_to_goal"`
}

// PlayerStats is the composite record for one player.
type PlayerStats struct {
	PlayerName  string          `json:"player_name"`
	Position    string          `json:"position,omitempty"`
	Nationality string          `json:"nationality,omitempty"`
	Appearances int             `json:"appearances"`
	Goals       int             `json:"goals"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	Attack      AttackStats     `json:"attack"`
	TeamPlay    TeamPlayStats   `json:"team_play"`
	Discipline  DisciplineStats `json:"discipline"`
	Defence     DefenceStats    `json:"defence"`
}

// Listing is one row of the player search results.
type Listing struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
}
