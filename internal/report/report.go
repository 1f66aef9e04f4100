package report

import (
	"errors"
	"fmt"

	"github.com/derekprior/roster/internal/league"
)

// ErrEmptyTeam is returned when a balance report is requested for a team
// with no players.
var ErrEmptyTeam = errors.New("team has no players")

// HeightRange is an inclusive range of heights in inches.
type HeightRange struct {
	Min int
	Max int
}

func (r HeightRange) Contains(inches int) bool {
	return inches >= r.Min && inches <= r.Max
}

func (r HeightRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// HeightRanges are the buckets used by the balance report.
var HeightRanges = []HeightRange{
	{Min: 35, Max: 40},
	{Min: 41, Max: 46},
	{Min: 47, Max: 50},
}

// Bucket holds the team's players whose height falls in Range.
type Bucket struct {
	Range   HeightRange
	Players []league.Player
}

func (b Bucket) Count() int {
	return len(b.Players)
}

// BalanceResult is the height and experience breakdown of one team.
type BalanceResult struct {
	Team    string
	Coach   string
	Size    int
	Buckets []Bucket
	// Unbucketed counts players whose height is outside every range.
	Unbucketed int
	// AverageExperience is the fraction of players with previous
	// experience, in [0,1].
	AverageExperience float64
}

// Memberships sums the bucket counts. A player in several overlapping
// ranges is counted once per range.
func (b *BalanceResult) Memberships() int {
	n := 0
	for _, bucket := range b.Buckets {
		n += bucket.Count()
	}
	return n
}

// Balance buckets the team's players by height. Membership is tested against
// each range on its own, so a player matching several ranges is listed in
// each, and a player matching none is left out of every bucket while still
// counting toward Size.
func Balance(t *league.Team) (*BalanceResult, error) {
	players := t.Players()
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTeam, t.Name)
	}

	result := &BalanceResult{
		Team:    t.Name,
		Coach:   t.Coach,
		Size:    len(players),
		Buckets: make([]Bucket, len(HeightRanges)),
	}
	for i, r := range HeightRanges {
		result.Buckets[i].Range = r
	}

	experienced := 0
	for _, p := range players {
		if p.Experienced {
			experienced++
		}
		matched := false
		for i, r := range HeightRanges {
			if r.Contains(p.HeightInches) {
				result.Buckets[i].Players = append(result.Buckets[i].Players, p)
				matched = true
			}
		}
		if !matched {
			result.Unbucketed++
		}
	}
	result.AverageExperience = float64(experienced) / float64(len(players))
	return result, nil
}

// ExperienceSplit partitions one team's players by previous experience.
type ExperienceSplit struct {
	Team          string
	Experienced   []league.Player
	Inexperienced []league.Player
	// Percentage is 100 * experienced / total, or 0 for an empty team.
	Percentage float64
}

// Experience splits every team in the league, keyed by team name. Empty
// teams are included with a percentage of 0.
func Experience(l *league.League) map[string]ExperienceSplit {
	splits := make(map[string]ExperienceSplit, l.TeamCount())
	for _, t := range l.Teams() {
		split := ExperienceSplit{Team: t.Name}
		for _, p := range t.Players() {
			if p.Experienced {
				split.Experienced = append(split.Experienced, p)
			} else {
				split.Inexperienced = append(split.Inexperienced, p)
			}
		}
		if total := len(split.Experienced) + len(split.Inexperienced); total > 0 {
			split.Percentage = 100 * float64(len(split.Experienced)) / float64(total)
		}
		splits[t.Name] = split
	}
	return splits
}
