package league

import (
	"cmp"
	"fmt"
)

// MaxPlayers is the roster capacity of every team.
const MaxPlayers = 11

// Team is a named, coached roster. Only League mutates a team's roster.
type Team struct {
	Name   string
	Coach  string
	roster Roster
}

// Players returns the team's players in roster order.
func (t *Team) Players() []Player {
	return t.roster.Players()
}

// Len returns the roster size.
func (t *Team) Len() int {
	return t.roster.Len()
}

// Full reports whether the team is at capacity.
func (t *Team) Full() bool {
	return t.roster.Len() >= MaxPlayers
}

// Has reports whether p is on the team.
func (t *Team) Has(p Player) bool {
	return t.roster.Contains(p)
}

func (t *Team) String() string {
	return fmt.Sprintf("%s coached by %s", t.Name, t.Coach)
}

// CompareTeams orders teams by name (case-sensitive).
func CompareTeams(a, b *Team) int {
	return cmp.Compare(a.Name, b.Name)
}

// ValidTeamName reports whether name is non-empty and letters only.
func ValidTeamName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
