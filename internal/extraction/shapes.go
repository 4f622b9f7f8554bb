package extraction

func stat(name string, kind Kind, fallbacks ...string) Field {
	labels := append([]string{name}, fallbacks...)
	return Field{Name: name, Kind: kind, Labels: labels, Default: Unknown}
}

func counter(name string) Field {
	return Field{Name: name, Kind: KindInteger, Labels: []string{name}, Default: ZeroCounter}
}

// Label table for the player stats page. Fallbacks cover the older and
// percent-suffixed spellings the site has used for the same stat.
var (
	AttackShape = &Shape{
		Name: "attack",
		Fields: []Field{
			stat("goals", KindInteger),
			stat("goals_per_match", KindDecimal),
			stat("headed_goals", KindInteger),
			stat("goals_with_left_foot", KindInteger, "goals_with_left"),
			stat("goals_with_right_foot", KindInteger, "goals_with_right"),
			stat("penalties_scored", KindInteger, "scored_pks"),
			stat("freekicks_scored", KindInteger, "scored_free_kicks", "free_kicks_scored"),
			stat("shots", KindInteger),
			stat("shots_on_target", KindInteger),
			stat("shooting_accuracy", KindDecimal, "shooting_accuracy_%"),
			stat("hit_woodwork", KindInteger),
			stat("big_chances_missed", KindInteger),
		},
	}

	TeamPlayShape = &Shape{
		Name: "team_play",
		Fields: []Field{
			stat("assists", KindInteger),
			stat("passes", KindInteger),
			stat("passes_per_match", KindDecimal),
			stat("big_chances_created", KindInteger),
			stat("crosses", KindInteger),
			stat("cross_accuracy", KindDecimal, "cross_accuracy_%"),
			stat("through_balls", KindInteger),
			stat("accurate_long_balls", KindInteger),
		},
	}

	DisciplineShape = &Shape{
		Name: "discipline",
		Fields: []Field{
			stat("yellow_cards", KindInteger),
			stat("red_cards", KindInteger),
			stat("fouls", KindInteger),
			stat("offside", KindInteger, "offsides"),
		},
	}

	DefenceShape = &Shape{
		Name: "defence",
		Fields: []Field{
			stat("tackles", KindInteger),
			stat("tackle_success", KindDecimal, "tackle_success_%"),
			stat("last_man_tackles", KindInteger),
			stat("blocked_shots", KindInteger),
			stat("interceptions", KindInteger),
			stat("clearances", KindInteger),
			stat("headed_clearance", KindInteger, "headed_clearances"),
			stat("clearances_off_line", KindInteger),
			stat("recoveries", KindInteger),
			stat("duels_won", KindInteger),
			stat("duels_lost", KindInteger),
			stat("successful_50_50s", KindInteger),
			stat("aerial_battles_won", KindInteger),
			stat("aerial_battles_lost", KindInteger),
			stat("own_goals", KindInteger),
			stat("errors_leading_to_goal", KindInteger),
		},
	}

	SummaryShape = &Shape{
		Name: "summary",
		Fields: []Field{
			counter("appearances"),
			counter("goals"),
			counter("wins"),
			counter("losses"),
		},
	}
)

// PlayerSections is the section order used for a player stats page.
func PlayerSections() []SectionSpec {
	return []SectionSpec{
		{Name: AttackShape.Name, Label: "Attack", Shape: AttackShape},
		{Name: TeamPlayShape.Name, Label: "Team Play", Shape: TeamPlayShape},
		{Name: DisciplineShape.Name, Label: "Discipline", Shape: DisciplineShape},
		{Name: DefenceShape.Name, Label: "Defence", Shape: DefenceShape},
	}
}

func ShapeByName(name string) (*Shape, bool) {
	for _, shape := range []*Shape{AttackShape, TeamPlayShape, DisciplineShape, DefenceShape, SummaryShape} {
		if shape.Name == name {
			return shape, true
		}
	}
	return nil, false
}
