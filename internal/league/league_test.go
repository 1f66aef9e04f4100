package league

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testPlayers(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = Player{
			FirstName:    fmt.Sprintf("First%02d", i),
			LastName:     fmt.Sprintf("Last%02d", i),
			HeightInches: 35 + i%16,
			Experienced:  i%2 == 0,
		}
	}
	return players
}

func mustLeague(t *testing.T, n int) *League {
	t.Helper()
	l, err := New(testPlayers(n))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return l
}

func mustTeam(t *testing.T, l *League, name, coach string) *Team {
	t.Helper()
	team, err := l.CreateTeam(name, coach)
	if err != nil {
		t.Fatalf("CreateTeam(%q) error: %v", name, err)
	}
	return team
}

func mustCheck(t *testing.T, l *League) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func TestNew(t *testing.T) {
	t.Run("all players start unassigned", func(t *testing.T) {
		l := mustLeague(t, 15)
		if l.UnassignedCount() != 15 {
			t.Errorf("unassigned = %d, want 15", l.UnassignedCount())
		}
		if l.TotalPlayers() != 15 {
			t.Errorf("total = %d, want 15", l.TotalPlayers())
		}
		mustCheck(t, l)
	})

	t.Run("quota is players divided by capacity", func(t *testing.T) {
		for _, tc := range []struct{ players, quota int }{
			{0, 0}, {10, 0}, {11, 1}, {21, 1}, {22, 2}, {33, 3}, {34, 3},
		} {
			l := mustLeague(t, tc.players)
			if l.Quota() != tc.quota {
				t.Errorf("%d players: quota = %d, want %d", tc.players, l.Quota(), tc.quota)
			}
		}
	})

	t.Run("duplicate player rejected", func(t *testing.T) {
		players := testPlayers(3)
		players = append(players, players[1])
		_, err := New(players)
		if !errors.Is(err, ErrDuplicatePlayer) {
			t.Errorf("err = %v, want ErrDuplicatePlayer", err)
		}
	})

	t.Run("pool is ordered by last then first name", func(t *testing.T) {
		l, err := New([]Player{
			{FirstName: "Zed", LastName: "Adams"},
			{FirstName: "Amy", LastName: "Brown"},
			{FirstName: "Amy", LastName: "Adams"},
		})
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		var got []string
		for _, p := range l.Unassigned() {
			got = append(got, p.Name())
		}
		want := []string{"Amy Adams", "Zed Adams", "Amy Brown"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Unassigned() order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCreateTeam(t *testing.T) {
	t.Run("creates team", func(t *testing.T) {
		l := mustLeague(t, 22)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		if team.Name != "Strikers" || team.Coach != "Coach Amy" {
			t.Errorf("team = %+v", team)
		}
		if l.TeamCount() != 1 {
			t.Errorf("team count = %d, want 1", l.TeamCount())
		}
		if l.TeamsNeeded() != 1 {
			t.Errorf("teams needed = %d, want 1", l.TeamsNeeded())
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		l := mustLeague(t, 22)
		for _, name := range []string{"", "Team1", "Red Sox", "Sharks!", "Équipe"} {
			if _, err := l.CreateTeam(name, "Coach"); !errors.Is(err, ErrInvalidTeamName) {
				t.Errorf("CreateTeam(%q) err = %v, want ErrInvalidTeamName", name, err)
			}
		}
		if l.TeamCount() != 0 {
			t.Errorf("team count = %d, want 0", l.TeamCount())
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		l := mustLeague(t, 22)
		mustTeam(t, l, "Strikers", "Coach Amy")
		if _, err := l.CreateTeam("Strikers", "Coach Bob"); !errors.Is(err, ErrInvalidTeamName) {
			t.Errorf("err = %v, want ErrInvalidTeamName", err)
		}
		if l.TeamCount() != 1 {
			t.Errorf("team count = %d, want 1", l.TeamCount())
		}
	})

	t.Run("duplicate check is case-sensitive", func(t *testing.T) {
		l := mustLeague(t, 22)
		mustTeam(t, l, "Strikers", "Coach Amy")
		mustTeam(t, l, "strikers", "Coach Bob")
	})

	t.Run("rejects teams beyond quota", func(t *testing.T) {
		l := mustLeague(t, 22)
		mustTeam(t, l, "Sharks", "A")
		mustTeam(t, l, "Dragons", "B")
		if _, err := l.CreateTeam("Tigers", "C"); !errors.Is(err, ErrQuotaExceeded) {
			t.Errorf("err = %v, want ErrQuotaExceeded", err)
		}
		if l.TeamCount() != 2 {
			t.Errorf("team count = %d, want 2", l.TeamCount())
		}
		if l.TeamsNeeded() != 0 {
			t.Errorf("teams needed = %d, want 0", l.TeamsNeeded())
		}
	})

	t.Run("no teams possible under eleven players", func(t *testing.T) {
		l := mustLeague(t, 10)
		if _, err := l.CreateTeam("Sharks", "A"); !errors.Is(err, ErrQuotaExceeded) {
			t.Errorf("err = %v, want ErrQuotaExceeded", err)
		}
	})

	t.Run("teams are ordered by name", func(t *testing.T) {
		l := mustLeague(t, 33)
		mustTeam(t, l, "Sharks", "A")
		mustTeam(t, l, "Dragons", "B")
		mustTeam(t, l, "Tigers", "C")
		var got []string
		for _, team := range l.Teams() {
			got = append(got, team.Name)
		}
		want := []string{"Dragons", "Sharks", "Tigers"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Teams() order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAssign(t *testing.T) {
	t.Run("moves player from pool to team", func(t *testing.T) {
		l := mustLeague(t, 15)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		p := l.Unassigned()[3]

		if err := l.Assign(p, team); err != nil {
			t.Fatalf("Assign() error: %v", err)
		}
		if !team.Has(p) {
			t.Error("player not on team after assign")
		}
		if l.UnassignedCount() != 14 {
			t.Errorf("unassigned = %d, want 14", l.UnassignedCount())
		}
		mustCheck(t, l)
	})

	t.Run("rejects full team", func(t *testing.T) {
		l := mustLeague(t, 15)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		for _, p := range l.Unassigned()[:MaxPlayers] {
			if err := l.Assign(p, team); err != nil {
				t.Fatalf("Assign() error: %v", err)
			}
		}
		extra := l.Unassigned()[0]
		if err := l.Assign(extra, team); !errors.Is(err, ErrTeamFull) {
			t.Errorf("err = %v, want ErrTeamFull", err)
		}
		if team.Len() != MaxPlayers {
			t.Errorf("team size = %d, want %d", team.Len(), MaxPlayers)
		}
		if l.UnassignedCount() != 4 {
			t.Errorf("unassigned = %d, want 4", l.UnassignedCount())
		}
		mustCheck(t, l)
	})

	t.Run("rejects player already on a team", func(t *testing.T) {
		l := mustLeague(t, 22)
		a := mustTeam(t, l, "Sharks", "A")
		b := mustTeam(t, l, "Dragons", "B")
		p := l.Unassigned()[0]
		if err := l.Assign(p, a); err != nil {
			t.Fatalf("Assign() error: %v", err)
		}
		if err := l.Assign(p, b); !errors.Is(err, ErrPlayerNotUnassigned) {
			t.Errorf("err = %v, want ErrPlayerNotUnassigned", err)
		}
		if b.Has(p) || !a.Has(p) {
			t.Error("player moved between teams without passing through the pool")
		}
		mustCheck(t, l)
	})

	t.Run("rejects unregistered player", func(t *testing.T) {
		l := mustLeague(t, 11)
		team := mustTeam(t, l, "Sharks", "A")
		stranger := Player{FirstName: "No", LastName: "Body"}
		if err := l.Assign(stranger, team); !errors.Is(err, ErrPlayerNotUnassigned) {
			t.Errorf("err = %v, want ErrPlayerNotUnassigned", err)
		}
	})

	t.Run("rejects team from another league", func(t *testing.T) {
		l := mustLeague(t, 11)
		other := mustLeague(t, 11)
		foreign := mustTeam(t, other, "Sharks", "A")
		if err := l.Assign(l.Unassigned()[0], foreign); !errors.Is(err, ErrUnknownTeam) {
			t.Errorf("err = %v, want ErrUnknownTeam", err)
		}
		if err := l.Assign(l.Unassigned()[0], nil); !errors.Is(err, ErrUnknownTeam) {
			t.Errorf("nil team err = %v, want ErrUnknownTeam", err)
		}
	})
}

func TestAssignRejectsAlteredPlayer(t *testing.T) {
	l := mustLeague(t, 11)
	team := mustTeam(t, l, "Strikers", "Coach Amy")
	registered := l.Unassigned()[0]
	altered := registered
	altered.HeightInches = 99
	altered.Experienced = !registered.Experienced

	if err := l.Assign(altered, team); !errors.Is(err, ErrPlayerNotUnassigned) {
		t.Errorf("err = %v, want ErrPlayerNotUnassigned", err)
	}
	if team.Len() != 0 {
		t.Errorf("team size = %d, want 0", team.Len())
	}
	if got, _ := l.pool.Get(registered); got != registered {
		t.Errorf("pool holds %v, want %v", got, registered)
	}

	if err := l.Assign(registered, team); err != nil {
		t.Fatalf("Assign() error: %v", err)
	}
	if err := l.Unassign(altered, team); !errors.Is(err, ErrPlayerNotOnTeam) {
		t.Errorf("err = %v, want ErrPlayerNotOnTeam", err)
	}
	if diff := cmp.Diff([]Player{registered}, team.Players()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
	mustCheck(t, l)
}

func TestUnassign(t *testing.T) {
	t.Run("round trip restores state", func(t *testing.T) {
		l := mustLeague(t, 15)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		before := l.Unassigned()
		p := before[7]

		if err := l.Assign(p, team); err != nil {
			t.Fatalf("Assign() error: %v", err)
		}
		if err := l.Unassign(p, team); err != nil {
			t.Fatalf("Unassign() error: %v", err)
		}
		if diff := cmp.Diff(before, l.Unassigned()); diff != "" {
			t.Errorf("pool mismatch after round trip (-want +got):\n%s", diff)
		}
		if team.Len() != 0 {
			t.Errorf("team size = %d, want 0", team.Len())
		}
		mustCheck(t, l)
	})

	t.Run("rejects player not on team", func(t *testing.T) {
		l := mustLeague(t, 22)
		a := mustTeam(t, l, "Sharks", "A")
		b := mustTeam(t, l, "Dragons", "B")
		p := l.Unassigned()[0]
		if err := l.Assign(p, a); err != nil {
			t.Fatalf("Assign() error: %v", err)
		}
		if err := l.Unassign(p, b); !errors.Is(err, ErrPlayerNotOnTeam) {
			t.Errorf("err = %v, want ErrPlayerNotOnTeam", err)
		}
		if err := l.Unassign(l.Unassigned()[0], a); !errors.Is(err, ErrPlayerNotOnTeam) {
			t.Errorf("pool player err = %v, want ErrPlayerNotOnTeam", err)
		}
		mustCheck(t, l)
	})
}

func TestAutoAssign(t *testing.T) {
	t.Run("fills two empty teams from 22 players", func(t *testing.T) {
		l := mustLeague(t, 22)
		a := mustTeam(t, l, "Sharks", "A")
		b := mustTeam(t, l, "Dragons", "B")

		moved, err := l.AutoAssign()
		if err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		if moved != 22 {
			t.Errorf("moved = %d, want 22", moved)
		}
		if a.Len() != MaxPlayers || b.Len() != MaxPlayers {
			t.Errorf("team sizes = %d, %d, want %d each", a.Len(), b.Len(), MaxPlayers)
		}
		if l.UnassignedCount() != 0 {
			t.Errorf("unassigned = %d, want 0", l.UnassignedCount())
		}
		mustCheck(t, l)
	})

	t.Run("tops up partially filled teams", func(t *testing.T) {
		l := mustLeague(t, 22)
		a := mustTeam(t, l, "Sharks", "A")
		b := mustTeam(t, l, "Dragons", "B")
		for _, p := range l.Unassigned()[:8] {
			if err := l.Assign(p, a); err != nil {
				t.Fatalf("Assign() error: %v", err)
			}
		}
		// Dragons sort first, so they fill up before Sharks.
		moved, err := l.AutoAssign()
		if err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		if moved != 14 {
			t.Errorf("moved = %d, want 14", moved)
		}
		if b.Len() != MaxPlayers {
			t.Errorf("Dragons = %d, want %d", b.Len(), MaxPlayers)
		}
		if a.Len() != MaxPlayers {
			t.Errorf("Sharks = %d, want %d", a.Len(), MaxPlayers)
		}
		if l.UnassignedCount() != 0 {
			t.Errorf("unassigned = %d, want 0", l.UnassignedCount())
		}
		mustCheck(t, l)
	})

	t.Run("leftover players stay in pool when teams are full", func(t *testing.T) {
		l := mustLeague(t, 15)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		if _, err := l.AutoAssign(); err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		if team.Len() != MaxPlayers {
			t.Errorf("team size = %d, want %d", team.Len(), MaxPlayers)
		}
		if l.UnassignedCount() != 4 {
			t.Errorf("unassigned = %d, want 4", l.UnassignedCount())
		}
		mustCheck(t, l)
	})

	t.Run("takes players in pool order", func(t *testing.T) {
		l := mustLeague(t, 12)
		team := mustTeam(t, l, "Strikers", "Coach Amy")
		want := l.Unassigned()[:MaxPlayers]
		if _, err := l.AutoAssign(); err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		if diff := cmp.Diff(want, team.Players()); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing to assign", func(t *testing.T) {
		l := mustLeague(t, 11)
		mustTeam(t, l, "Sharks", "A")
		if _, err := l.AutoAssign(); err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		moved, err := l.AutoAssign()
		if !errors.Is(err, ErrNothingToAssign) {
			t.Errorf("err = %v, want ErrNothingToAssign", err)
		}
		if moved != 0 {
			t.Errorf("moved = %d, want 0", moved)
		}
	})

	t.Run("no teams moves nothing", func(t *testing.T) {
		l := mustLeague(t, 11)
		moved, err := l.AutoAssign()
		if err != nil {
			t.Fatalf("AutoAssign() error: %v", err)
		}
		if moved != 0 || l.UnassignedCount() != 11 {
			t.Errorf("moved = %d, unassigned = %d, want 0 and 11", moved, l.UnassignedCount())
		}
	})
}

func TestInvariantsHoldAcrossCommands(t *testing.T) {
	l := mustLeague(t, 34)
	teams := []*Team{
		mustTeam(t, l, "Sharks", "A"),
		mustTeam(t, l, "Dragons", "B"),
		mustTeam(t, l, "Tigers", "C"),
	}

	// Deterministic pseudo-random walk over assign and unassign.
	seed := 7
	next := func(n int) int {
		seed = (seed*1103515245 + 12345) % 2147483648
		return seed % n
	}
	for step := 0; step < 500; step++ {
		team := teams[next(len(teams))]
		if next(2) == 0 && l.UnassignedCount() > 0 {
			pool := l.Unassigned()
			err := l.Assign(pool[next(len(pool))], team)
			if err != nil && !errors.Is(err, ErrTeamFull) {
				t.Fatalf("step %d: Assign() error: %v", step, err)
			}
		} else if team.Len() > 0 {
			roster := team.Players()
			if err := l.Unassign(roster[next(len(roster))], team); err != nil {
				t.Fatalf("step %d: Unassign() error: %v", step, err)
			}
		}
		mustCheck(t, l)
		if l.TeamCount() > l.Quota() {
			t.Fatalf("step %d: %d teams exceed quota %d", step, l.TeamCount(), l.Quota())
		}
	}
}

func TestCheckReportsCorruption(t *testing.T) {
	t.Run("player in two places", func(t *testing.T) {
		l := mustLeague(t, 11)
		team := mustTeam(t, l, "Sharks", "A")
		team.roster.Add(l.Unassigned()[0])
		if err := l.Check(); err == nil {
			t.Error("expected violation for player in pool and on team")
		}
	})

	t.Run("player missing", func(t *testing.T) {
		l := mustLeague(t, 11)
		l.pool.Remove(l.Unassigned()[0])
		if err := l.Check(); err == nil {
			t.Error("expected violation for missing player")
		}
	})

	t.Run("over capacity", func(t *testing.T) {
		l := mustLeague(t, 12)
		team := mustTeam(t, l, "Sharks", "A")
		for _, p := range l.Unassigned() {
			l.pool.Remove(p)
			team.roster.Add(p)
		}
		if err := l.Check(); err == nil {
			t.Error("expected violation for 12 players on one team")
		}
	})

	t.Run("held player differs from registry", func(t *testing.T) {
		l := mustLeague(t, 11)
		p := l.Unassigned()[0]
		l.pool.Remove(p)
		p.HeightInches = 99
		l.pool.Add(p)
		if err := l.Check(); err == nil {
			t.Error("expected violation for altered player attributes")
		}
	})

	t.Run("unregistered player held", func(t *testing.T) {
		l := mustLeague(t, 11)
		l.pool.Add(Player{FirstName: "No", LastName: "Body"})
		if err := l.Check(); err == nil {
			t.Error("expected violation for unregistered player")
		}
	})
}
