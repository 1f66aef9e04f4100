package league

import (
	"cmp"
	"fmt"
	"slices"
)

// Player is a registered league player. Players are values and never change
// once loaded; the full name is the identity.
type Player struct {
	FirstName    string
	LastName     string
	HeightInches int
	Experienced  bool
}

// Name returns "First Last".
func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) String() string {
	exp := "inexperienced"
	if p.Experienced {
		exp = "experienced"
	}
	return fmt.Sprintf("%s, %s (%d in, %s)", p.LastName, p.FirstName, p.HeightInches, exp)
}

// ComparePlayers orders players by last name, then first name. Every listing
// and every numbered selection uses this order.
func ComparePlayers(a, b Player) int {
	if c := cmp.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return cmp.Compare(a.FirstName, b.FirstName)
}

// Roster is an ordered set of players.
type Roster struct {
	players []Player
}

// NewRoster builds a roster from players, dropping duplicates.
func NewRoster(players ...Player) Roster {
	var r Roster
	for _, p := range players {
		r.Add(p)
	}
	return r
}

func (r *Roster) find(p Player) (int, bool) {
	return slices.BinarySearchFunc(r.players, p, ComparePlayers)
}

// Add inserts p in order. It reports false if p was already present.
func (r *Roster) Add(p Player) bool {
	i, ok := r.find(p)
	if ok {
		return false
	}
	r.players = slices.Insert(r.players, i, p)
	return true
}

// Remove deletes p. It reports false if p was not present.
func (r *Roster) Remove(p Player) bool {
	i, ok := r.find(p)
	if !ok {
		return false
	}
	r.players = slices.Delete(r.players, i, i+1)
	return true
}

// Get returns the stored player with p's name.
func (r *Roster) Get(p Player) (Player, bool) {
	i, ok := r.find(p)
	if !ok {
		return Player{}, false
	}
	return r.players[i], true
}

// Contains reports whether a player with p's name is in the roster.
func (r *Roster) Contains(p Player) bool {
	_, ok := r.find(p)
	return ok
}

// Len returns the number of players.
func (r *Roster) Len() int {
	return len(r.players)
}

// First returns the lowest-ordered player.
func (r *Roster) First() (Player, bool) {
	if len(r.players) == 0 {
		return Player{}, false
	}
	return r.players[0], true
}

// Players returns an ordered copy of the roster.
func (r *Roster) Players() []Player {
	return slices.Clone(r.players)
}
