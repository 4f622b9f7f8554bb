package leaguestanding

import "testing"

func TestCleanForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "truncates to last six", raw: "WDLWDLWW", want: "LWDLWW"},
		{name: "exact length", raw: "WDLWDL", want: "WDLWDL"},
		{name: "drops noise", raw: " W - d\nL  ?X", want: "WDL"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanForm(tc.raw); got != tc.want {
				t.Fatalf("CleanForm(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
