package leaguestanding

import "strings"

const FormLength = 6

// TableRow is one club's line in the league table. Cells are kept as the page
// renders them ("+30" for goal difference).
type TableRow struct {
	Position string `json:"position"`
	Club     string `json:"club"`
	Played   string `json:"played"`
	Won      string `json:"won"`
	Drawn    string `json:"drawn"`
	Lost     string `json:"lost"`
	GF       string `json:"gf"`
	GA       string `json:"ga"`
	GD       string `json:"gd"`
	Points   string `json:"points"`
	Form     string `json:"form"`
}

// CleanForm keeps only W, D and L letters and returns the most recent
// FormLength of them.
func CleanForm(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		switch r {
		case 'W', 'D', 'L':
			b.WriteRune(r)
		}
	}
	form := b.String()
	if len(form) > FormLength {
		form = form[len(form)-FormLength:]
	}
	return form
}
