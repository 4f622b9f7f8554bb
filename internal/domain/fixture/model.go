package fixture

// Fixture is an upcoming first-team match.
type Fixture struct {
	Home string `json:"home"`
	Away string `json:"away"`
	Time string `json:"time"`
}

// Result is a played match with its final score as shown on the site ("2-1").
type Result struct {
	Home  string `json:"home"`
	Away  string `json:"away"`
	Score string `json:"score"`
}
