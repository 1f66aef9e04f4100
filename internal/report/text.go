package report

import (
	"fmt"
	"io"

	"github.com/derekprior/roster/internal/league"
)

// WriteBalance renders a balance report as plain text.
func WriteBalance(w io.Writer, b *BalanceResult) {
	fmt.Fprintf(w, "Balance report for %s (%d players)\n", b.Team, b.Size)
	for _, bucket := range b.Buckets {
		fmt.Fprintf(w, "\nThere are %d players %s inches tall\n", bucket.Count(), bucket.Range)
		for _, p := range bucket.Players {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}

	fmt.Fprintln(w, "\nCount of player heights:")
	for _, bucket := range b.Buckets {
		fmt.Fprintf(w, "  %-6s = %d\n", bucket.Range, bucket.Count())
	}
	if b.Unbucketed > 0 {
		fmt.Fprintf(w, "  %d player(s) outside all height ranges\n", b.Unbucketed)
	}
	fmt.Fprintf(w, "Average experience is %.3f\n", b.AverageExperience)
}

// WriteExperience renders the experience report in team order.
func WriteExperience(w io.Writer, teams []*league.Team, splits map[string]ExperienceSplit) {
	for i, t := range teams {
		s, ok := splits[t.Name]
		if !ok {
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Experienced players of team %s:\n", s.Team)
		for _, p := range s.Experienced {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintf(w, "Non-experienced players of team %s:\n", s.Team)
		for _, p := range s.Inexperienced {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintf(w, "Team %s has %d experienced and %d inexperienced players\n",
			s.Team, len(s.Experienced), len(s.Inexperienced))
		fmt.Fprintf(w, "Team %s is %.2f%% experienced\n", s.Team, s.Percentage)
	}
}
