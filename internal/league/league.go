package league

import (
	"errors"
	"fmt"
	"slices"
)

// League owns the unassigned pool and the teams. Every registered player is
// in exactly one of those places. A League is not safe for concurrent use.
type League struct {
	registry Roster
	pool     Roster
	teams    []*Team
	quota    int
}

// New registers players and places them all in the unassigned pool. The team
// quota is derived here once and does not change afterwards.
func New(players []Player) (*League, error) {
	l := &League{}
	for _, p := range players {
		if !l.registry.Add(p) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name())
		}
		l.pool.Add(p)
	}
	l.quota = l.registry.Len() / MaxPlayers
	return l, nil
}

// Players returns every registered player in order, wherever they are.
func (l *League) Players() []Player {
	return l.registry.Players()
}

// Unassigned returns the unassigned pool in order.
func (l *League) Unassigned() []Player {
	return l.pool.Players()
}

// Teams returns the league's teams ordered by name.
func (l *League) Teams() []*Team {
	return slices.Clone(l.teams)
}

// Team looks up a team by exact name.
func (l *League) Team(name string) (*Team, bool) {
	for _, t := range l.teams {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

func (l *League) TeamCount() int       { return len(l.teams) }
func (l *League) UnassignedCount() int { return l.pool.Len() }
func (l *League) TotalPlayers() int    { return l.registry.Len() }

// Quota is the maximum number of teams: total players / MaxPlayers.
func (l *League) Quota() int { return l.quota }

// TeamsNeeded is how many more teams can still be created.
func (l *League) TeamsNeeded() int {
	return max(l.quota-len(l.teams), 0)
}

// CreateTeam adds a new, empty team. Names are validated only here.
func (l *League) CreateTeam(name, coach string) (*Team, error) {
	if !ValidTeamName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTeamName, name)
	}
	if _, ok := l.Team(name); ok {
		return nil, fmt.Errorf("%w: %q already exists", ErrInvalidTeamName, name)
	}
	if len(l.teams) >= l.quota {
		return nil, fmt.Errorf("%w: %d of %d teams exist", ErrQuotaExceeded, len(l.teams), l.quota)
	}

	t := &Team{Name: name, Coach: coach}
	i, _ := slices.BinarySearchFunc(l.teams, t, CompareTeams)
	l.teams = slices.Insert(l.teams, i, t)
	return t, nil
}

func (l *League) owns(t *Team) bool {
	return t != nil && slices.Contains(l.teams, t)
}

// Assign moves p from the pool onto t. p must match the registered player
// exactly, not just by name.
func (l *League) Assign(p Player, t *Team) error {
	if !l.owns(t) {
		return ErrUnknownTeam
	}
	if t.Full() {
		return fmt.Errorf("%w: %s has %d players", ErrTeamFull, t.Name, MaxPlayers)
	}
	stored, ok := l.pool.Get(p)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlayerNotUnassigned, p.Name())
	}
	if stored != p {
		return fmt.Errorf("%w: %s does not match the registered player", ErrPlayerNotUnassigned, p.Name())
	}
	l.pool.Remove(stored)
	t.roster.Add(stored)
	return nil
}

// Unassign moves p from t back to the pool.
func (l *League) Unassign(p Player, t *Team) error {
	if !l.owns(t) {
		return ErrUnknownTeam
	}
	stored, ok := t.roster.Get(p)
	if !ok || stored != p {
		return fmt.Errorf("%w: %s is not on %s", ErrPlayerNotOnTeam, p.Name(), t.Name)
	}
	t.roster.Remove(stored)
	l.pool.Add(stored)
	return nil
}

// AutoAssign fills each team in order with the first unassigned players until
// the team is full or the pool runs out. It makes no attempt to balance
// height or experience. It returns how many players were moved.
func (l *League) AutoAssign() (int, error) {
	if l.pool.Len() == 0 {
		return 0, ErrNothingToAssign
	}

	moved := 0
	for _, t := range l.teams {
		for !t.Full() {
			p, ok := l.pool.First()
			if !ok {
				return moved, nil
			}
			if err := l.Assign(p, t); err != nil {
				return moved, err
			}
			moved++
		}
	}
	return moved, nil
}

// Check verifies the exclusivity, capacity and quota invariants and returns
// every violation found.
func (l *League) Check() error {
	var errs []error

	if len(l.teams) > l.quota {
		errs = append(errs, fmt.Errorf("%d teams exceed quota of %d", len(l.teams), l.quota))
	}

	located := 0
	for _, p := range l.registry.Players() {
		var places []string
		check := func(r *Roster, place string) {
			held, ok := r.Get(p)
			if !ok {
				return
			}
			places = append(places, place)
			if held != p {
				errs = append(errs, fmt.Errorf("%s in %s is %v, registered as %v", p.Name(), place, held, p))
			}
		}
		check(&l.pool, "unassigned pool")
		for _, t := range l.teams {
			check(&t.roster, t.Name)
		}
		switch len(places) {
		case 0:
			errs = append(errs, fmt.Errorf("%s is not in the pool or on any team", p.Name()))
		case 1:
			located++
		default:
			errs = append(errs, fmt.Errorf("%s is in %d places: %v", p.Name(), len(places), places))
		}
	}

	held := l.pool.Len()
	for _, t := range l.teams {
		if t.Len() > MaxPlayers {
			errs = append(errs, fmt.Errorf("%s has %d players (max %d)", t.Name, t.Len(), MaxPlayers))
		}
		held += t.Len()
	}
	if len(errs) == 0 && held != located {
		errs = append(errs, fmt.Errorf("%d players held but %d registered", held, located))
	}

	return errors.Join(errs...)
}
