// Package shell is the interactive, numbered-menu front end for a league.
// It reads one choice per line, runs the matching league command and prints
// the outcome. Errors from commands are reported and the loop continues.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/derekprior/roster/internal/excel"
	"github.com/derekprior/roster/internal/league"
	"github.com/derekprior/roster/internal/logging"
	"github.com/derekprior/roster/internal/report"
)

// DefaultExportPath is offered when saving the roster workbook.
const DefaultExportPath = "roster.xlsx"

var (
	errInput     = errors.New("reading input")
	errNotNumber = errors.New("not a number")
	errNoTeams   = errors.New("you must create a team first")
	errNoPlayers = errors.New("there are no players assigned to this team")
)

type menuItem struct {
	label string
	run   func(*Shell) error
	// needsTeam gates the item until at least one team exists.
	needsTeam bool
}

var menu = []menuItem{
	{label: "Create new team", run: (*Shell).createTeam},
	{label: "Add player to team", run: (*Shell).addPlayer, needsTeam: true},
	{label: "Remove player from team", run: (*Shell).removePlayer, needsTeam: true},
	{label: "League balance report", run: (*Shell).balanceReport, needsTeam: true},
	{label: "Experience report", run: (*Shell).experienceReport, needsTeam: true},
	{label: "Print roster", run: (*Shell).printRoster, needsTeam: true},
	{label: "Auto-assign players", run: (*Shell).autoAssign, needsTeam: true},
	{label: "Save roster workbook", run: (*Shell).saveWorkbook, needsTeam: true},
	{label: "Exit the program"},
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithExportPath changes the default workbook path offered on save.
func WithExportPath(path string) Option {
	return func(s *Shell) {
		s.exportPath = path
	}
}

// Shell drives a League from line-oriented input.
type Shell struct {
	league     *league.League
	in         *bufio.Reader
	out        io.Writer
	logger     *slog.Logger
	exportPath string
}

// New returns a shell reading choices from in and writing to out.
func New(l *league.League, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		league:     l,
		in:         bufio.NewReader(in),
		out:        out,
		exportPath: DefaultExportPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits or input ends. It returns an error
// only when input cannot be read.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to the League Organizer")
	fmt.Fprintln(s.out, "Please input numbers to make your selections")

	for {
		item, err := s.promptAction()
		if err == nil {
			if item.run == nil {
				fmt.Fprintln(s.out, "Exiting...")
				return nil
			}
			if item.needsTeam && s.league.TeamCount() == 0 {
				err = errNoTeams
			} else {
				err = item.run(s)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out, "\nExiting...")
			return nil
		case errors.Is(err, errInput):
			return err
		default:
			s.report(err)
		}
		s.checkInvariants()
	}
}

func (s *Shell) promptAction() (menuItem, error) {
	l := s.league
	fmt.Fprintf(s.out, "\n\nThere are currently %d teams and %d unassigned players.\n", l.TeamCount(), l.UnassignedCount())
	fmt.Fprintf(s.out, "You will need %d more teams.\n", l.TeamsNeeded())
	fmt.Fprintln(s.out, "\nYour options are:")
	for i, item := range menu {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, item.label)
	}
	fmt.Fprint(s.out, "\nWhat would you like to do?  ")

	choice, err := s.readChoice()
	if err != nil {
		return menuItem{}, err
	}
	return league.Select(menu, choice)
}

func (s *Shell) report(err error) {
	logging.Debug(s.logger, "command failed", "error", err)
	fmt.Fprintf(s.out, "\n----- %s -----\n", describe(err))
}

func (s *Shell) checkInvariants() {
	if err := s.league.Check(); err != nil {
		logging.Error(s.logger, "league invariants violated", err)
	}
}

// describe turns a command error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, errNotNumber), errors.Is(err, league.ErrSelectionOutOfRange):
		return "Not a valid selection"
	case errors.Is(err, league.ErrInvalidTeamName):
		return "Team name must not be a duplicate and only contain letters"
	case errors.Is(err, league.ErrQuotaExceeded):
		return "You don't have enough players for more teams"
	case errors.Is(err, league.ErrTeamFull):
		return fmt.Sprintf("Teams cannot have more than %d players", league.MaxPlayers)
	case errors.Is(err, league.ErrNothingToAssign):
		return "There are no unassigned players"
	case errors.Is(err, report.ErrEmptyTeam):
		return "You must have players to run a team report"
	case errors.Is(err, errNoTeams):
		return "You must create a team first"
	case errors.Is(err, errNoPlayers):
		return "There are no players assigned to this team"
	default:
		return err.Error()
	}
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", errInput, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readChoice() (int, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumber, line)
	}
	return n, nil
}

func (s *Shell) selectTeam() (*league.Team, error) {
	teams := s.league.Teams()
	for i, t := range teams {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, t)
	}
	fmt.Fprint(s.out, "Choose a team:  ")
	choice, err := s.readChoice()
	if err != nil {
		return nil, err
	}
	return league.Select(teams, choice)
}

func (s *Shell) selectPlayer(players []league.Player) (league.Player, error) {
	s.listPlayers(players)
	fmt.Fprint(s.out, "\nChoose a player:  ")
	choice, err := s.readChoice()
	if err != nil {
		return league.Player{}, err
	}
	return league.Select(players, choice)
}

func (s *Shell) listPlayers(players []league.Player) {
	for i, p := range players {
		fmt.Fprintf(s.out, "%02d - %s\n", i+1, p)
	}
}

// saveWorkbook lets the shell keep a copy of the session's rosters; the
// league itself is not reloaded from it.
func (s *Shell) saveWorkbook() error {
	fmt.Fprintf(s.out, "Save workbook to [%s]:  ", s.exportPath)
	path, err := s.readLine()
	if err != nil {
		return err
	}
	if path == "" {
		path = s.exportPath
	}

	f, err := excel.Generate(s.league)
	if err != nil {
		return fmt.Errorf("generating workbook: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	logging.Debug(s.logger, "workbook saved", logging.FieldPath, path)
	fmt.Fprintf(s.out, "\n✓ Roster saved to %s\n", path)
	return nil
}
