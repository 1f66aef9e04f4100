package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/roster/internal/excel"
	"github.com/derekprior/roster/internal/league"
)

// Violation represents a roster problem found in a workbook.
type Violation struct {
	Sheet   string
	Row     int
	Type    string // "error" or "warning"
	Message string
}

// Validate reads a roster workbook and checks it against the league rules.
func Validate(path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	wb, err := readWorkbook(f)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}

	var violations []Violation

	// Hard rules
	violations = append(violations, checkTeamNames(wb)...)
	violations = append(violations, checkCapacity(wb)...)
	violations = append(violations, checkQuota(wb)...)
	violations = append(violations, checkExclusivity(wb)...)

	// Soft checks
	violations = append(violations, checkSummaryCounts(wb)...)
	violations = append(violations, checkEmptyTeams(wb)...)

	return append(wb.problems, violations...), nil
}

type parsedPlayer struct {
	Sheet  string
	Row    int
	First  string
	Last   string
	Height int
}

func (p parsedPlayer) name() string {
	return p.First + " " + p.Last
}

type parsedTeam struct {
	Row     int // summary row
	Name    string
	Coach   string
	Sheet   string
	Listed  int // player count claimed by the summary
	Players []parsedPlayer
}

type workbook struct {
	teams      []parsedTeam
	unassigned []parsedPlayer
	problems   []Violation // rows that could not be read
}

func (wb *workbook) totalPlayers() int {
	n := len(wb.unassigned)
	for _, t := range wb.teams {
		n += len(t.Players)
	}
	return n
}

func readWorkbook(f *excelize.File) (*workbook, error) {
	rows, err := f.GetRows(excel.SummarySheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", excel.SummarySheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", excel.SummarySheet)
	}

	wb := &workbook{}
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		t := parsedTeam{Row: i + 1, Name: row[0], Sheet: row[0]}
		if len(row) > 1 {
			t.Coach = row[1]
		}
		if len(row) > 2 && row[2] != "" {
			t.Sheet = row[2]
		}
		if len(row) > 3 {
			t.Listed, _ = strconv.Atoi(row[3])
		}
		wb.teams = append(wb.teams, t)
	}

	wb.unassigned = wb.readPlayers(f, excel.UnassignedSheet)
	for i := range wb.teams {
		wb.teams[i].Players = wb.readPlayers(f, wb.teams[i].Sheet)
	}
	return wb, nil
}

func (wb *workbook) readPlayers(f *excelize.File, sheet string) []parsedPlayer {
	rows, err := f.GetRows(sheet)
	if err != nil {
		wb.problems = append(wb.problems, Violation{
			Sheet:   sheet,
			Type:    "error",
			Message: fmt.Sprintf("sheet %q is missing", sheet),
		})
		return nil
	}

	var players []parsedPlayer
	for i, row := range rows {
		if i == 0 || len(row) < 2 || (row[0] == "" && row[1] == "") {
			continue
		}
		p := parsedPlayer{Sheet: sheet, Row: i + 1, Last: strings.TrimSpace(row[0]), First: strings.TrimSpace(row[1])}
		if len(row) > 2 {
			h, err := strconv.Atoi(strings.TrimSpace(row[2]))
			if err != nil || h <= 0 {
				wb.problems = append(wb.problems, Violation{
					Sheet:   sheet,
					Row:     i + 1,
					Type:    "warning",
					Message: fmt.Sprintf("%s has invalid height %q", p.name(), row[2]),
				})
			}
			p.Height = h
		}
		players = append(players, p)
	}
	return players
}

func checkTeamNames(wb *workbook) []Violation {
	var violations []Violation
	seen := make(map[string]int)
	for _, t := range wb.teams {
		if !league.ValidTeamName(t.Name) {
			violations = append(violations, Violation{
				Sheet:   excel.SummarySheet,
				Row:     t.Row,
				Type:    "error",
				Message: fmt.Sprintf("team name %q must contain only letters", t.Name),
			})
		}
		if prev, ok := seen[t.Name]; ok {
			violations = append(violations, Violation{
				Sheet:   excel.SummarySheet,
				Row:     t.Row,
				Type:    "error",
				Message: fmt.Sprintf("team %q is listed on rows %d and %d", t.Name, prev, t.Row),
			})
			continue
		}
		seen[t.Name] = t.Row
	}
	return violations
}

func checkCapacity(wb *workbook) []Violation {
	var violations []Violation
	for _, t := range wb.teams {
		if len(t.Players) > league.MaxPlayers {
			violations = append(violations, Violation{
				Sheet:   t.Sheet,
				Type:    "error",
				Message: fmt.Sprintf("%s has %d players (max %d)", t.Name, len(t.Players), league.MaxPlayers),
			})
		}
	}
	return violations
}

func checkQuota(wb *workbook) []Violation {
	total := wb.totalPlayers()
	quota := total / league.MaxPlayers
	if len(wb.teams) <= quota {
		return nil
	}
	return []Violation{{
		Sheet:   excel.SummarySheet,
		Type:    "error",
		Message: fmt.Sprintf("%d teams but %d players only support %d", len(wb.teams), total, quota),
	}}
}

func checkExclusivity(wb *workbook) []Violation {
	places := make(map[string][]parsedPlayer)
	add := func(p parsedPlayer) {
		places[p.name()] = append(places[p.name()], p)
	}
	for _, p := range wb.unassigned {
		add(p)
	}
	for _, t := range wb.teams {
		for _, p := range t.Players {
			add(p)
		}
	}

	var violations []Violation
	for name, seen := range places {
		if len(seen) < 2 {
			continue
		}
		var where []string
		for _, p := range seen {
			where = append(where, fmt.Sprintf("%s row %d", p.Sheet, p.Row))
		}
		violations = append(violations, Violation{
			Sheet:   seen[1].Sheet,
			Row:     seen[1].Row,
			Type:    "error",
			Message: fmt.Sprintf("%s appears %d times: %s", name, len(seen), strings.Join(where, ", ")),
		})
	}
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Message < violations[j].Message
	})
	return violations
}

func checkSummaryCounts(wb *workbook) []Violation {
	var violations []Violation
	for _, t := range wb.teams {
		if t.Listed != len(t.Players) {
			violations = append(violations, Violation{
				Sheet: excel.SummarySheet,
				Row:   t.Row,
				Type:  "warning",
				Message: fmt.Sprintf("summary lists %d players for %s but its sheet has %d",
					t.Listed, t.Name, len(t.Players)),
			})
		}
	}
	return violations
}

func checkEmptyTeams(wb *workbook) []Violation {
	var violations []Violation
	for _, t := range wb.teams {
		if len(t.Players) == 0 {
			violations = append(violations, Violation{
				Sheet:   t.Sheet,
				Type:    "warning",
				Message: fmt.Sprintf("%s has no players", t.Name),
			})
		}
	}
	return violations
}
