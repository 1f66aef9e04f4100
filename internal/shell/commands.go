package shell

import (
	"fmt"

	"github.com/derekprior/roster/internal/league"
	"github.com/derekprior/roster/internal/logging"
	"github.com/derekprior/roster/internal/report"
)

func (s *Shell) createTeam() error {
	if s.league.TeamsNeeded() == 0 {
		return league.ErrQuotaExceeded
	}

	fmt.Fprint(s.out, "Enter the team's name:  ")
	name, err := s.readLine()
	if err != nil {
		return err
	}
	// Reject a bad name before asking for the coach.
	if _, exists := s.league.Team(name); exists || !league.ValidTeamName(name) {
		return fmt.Errorf("%w: %q", league.ErrInvalidTeamName, name)
	}

	fmt.Fprint(s.out, "Enter the coach's name:  ")
	coach, err := s.readLine()
	if err != nil {
		return err
	}

	t, err := s.league.CreateTeam(name, coach)
	if err != nil {
		return err
	}
	logging.Debug(s.logger, "team created", logging.FieldTeam, t.Name)
	fmt.Fprintf(s.out, "%s added\n", t)
	return nil
}

func (s *Shell) addPlayer() error {
	pool := s.league.Unassigned()
	if len(pool) == 0 {
		return league.ErrNothingToAssign
	}
	p, err := s.selectPlayer(pool)
	if err != nil {
		return err
	}
	t, err := s.selectTeam()
	if err != nil {
		return err
	}
	if err := s.league.Assign(p, t); err != nil {
		return err
	}
	logging.Debug(s.logger, "player assigned", logging.FieldPlayer, p.Name(), logging.FieldTeam, t.Name)
	fmt.Fprintf(s.out, "\nPlayer %s added to team %s\n", p.Name(), t.Name)
	return nil
}

func (s *Shell) removePlayer() error {
	t, err := s.selectTeam()
	if err != nil {
		return err
	}
	roster := t.Players()
	if len(roster) == 0 {
		return errNoPlayers
	}
	p, err := s.selectPlayer(roster)
	if err != nil {
		return err
	}
	if err := s.league.Unassign(p, t); err != nil {
		return err
	}
	logging.Debug(s.logger, "player unassigned", logging.FieldPlayer, p.Name(), logging.FieldTeam, t.Name)
	fmt.Fprintf(s.out, "\nPlayer %s removed from team %s\n", p.Name(), t.Name)
	return nil
}

func (s *Shell) balanceReport() error {
	t, err := s.selectTeam()
	if err != nil {
		return err
	}
	b, err := report.Balance(t)
	if err != nil {
		fmt.Fprintf(s.out, "\n----- %s has zero players -----\n", t.Name)
		return err
	}
	fmt.Fprintln(s.out)
	report.WriteBalance(s.out, b)
	return nil
}

func (s *Shell) experienceReport() error {
	fmt.Fprintln(s.out)
	report.WriteExperience(s.out, s.league.Teams(), report.Experience(s.league))
	return nil
}

func (s *Shell) printRoster() error {
	t, err := s.selectTeam()
	if err != nil {
		return err
	}
	roster := t.Players()
	if len(roster) == 0 {
		return errNoPlayers
	}
	fmt.Fprintf(s.out, "\n%s\n", t)
	s.listPlayers(roster)
	return nil
}

func (s *Shell) autoAssign() error {
	moved, err := s.league.AutoAssign()
	if err != nil {
		return err
	}
	logging.Debug(s.logger, "auto-assigned players", logging.FieldCount, moved, logging.FieldUnassigned, s.league.UnassignedCount())
	fmt.Fprintf(s.out, "\n✓ Assigned %d players, %d left unassigned\n", moved, s.league.UnassignedCount())
	return nil
}
