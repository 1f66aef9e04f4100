package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/roster/internal/league"
	"github.com/derekprior/roster/internal/report"
)

// Sheet names and column layout shared with the validator.
const (
	SummarySheet    = "Summary"
	UnassignedSheet = "Unassigned"

	maxSheetName = 31
)

// SummaryHeaders are the fixed leading columns of the summary sheet. One
// column per report.HeightRanges bucket follows.
var SummaryHeaders = []string{"Team", "Coach", "Sheet", "Players", "Experienced", "Experience %"}

// PlayerHeaders are the columns of the unassigned and per-team sheets.
var PlayerHeaders = []string{"Last Name", "First Name", "Height", "Experienced"}

// Generate creates a workbook with a summary, the unassigned pool and one
// sheet per team.
func Generate(l *league.League) (*excelize.File, error) {
	f := excelize.NewFile()

	// Set default font for the workbook
	f.SetDefaultFont("Arial")

	s := newStyles(f)
	teams := l.Teams()
	sheets := SheetNames(teams)

	if err := writeSummarySheet(f, s, l, teams, sheets); err != nil {
		return nil, fmt.Errorf("writing summary sheet: %w", err)
	}
	if err := writePlayerSheet(f, s, UnassignedSheet, l.Unassigned()); err != nil {
		return nil, fmt.Errorf("writing unassigned sheet: %w", err)
	}
	for i, t := range teams {
		if err := writePlayerSheet(f, s, sheets[i], t.Players()); err != nil {
			return nil, fmt.Errorf("writing sheet for %s: %w", t.Name, err)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// SheetNames picks a worksheet name for each team. Excel compares sheet names
// case-insensitively and caps them at 31 characters, so colliding names get a
// numeric suffix.
func SheetNames(teams []*league.Team) []string {
	used := map[string]bool{
		strings.ToLower(SummarySheet):    true,
		strings.ToLower(UnassignedSheet): true,
	}
	names := make([]string, len(teams))
	for i, t := range teams {
		name := truncate(t.Name, maxSheetName)
		for n := 2; used[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" %d", n)
			name = truncate(t.Name, maxSheetName-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

type styles struct {
	header int
	cell   int
	center int
}

func newStyles(f *excelize.File) styles {
	header, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	cell, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})
	center, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return styles{header: header, cell: cell, center: center}
}

func writeHeaders(f *excelize.File, s styles, sheet string, headers []string) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}
	if s.header != 0 {
		f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), s.header)
	}
}

func writeSummarySheet(f *excelize.File, s styles, l *league.League, teams []*league.Team, sheets []string) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	headers := append([]string{}, SummaryHeaders...)
	for _, r := range report.HeightRanges {
		headers = append(headers, r.String())
	}
	writeHeaders(f, s, SummarySheet, headers)

	splits := report.Experience(l)
	for i, t := range teams {
		row := i + 2
		split := splits[t.Name]
		values := []any{
			t.Name,
			t.Coach,
			sheets[i],
			t.Len(),
			len(split.Experienced),
			fmt.Sprintf("%.2f", split.Percentage),
		}
		// Empty teams have no balance; their bucket cells stay blank.
		if b, err := report.Balance(t); err == nil {
			for _, bucket := range b.Buckets {
				values = append(values, bucket.Count())
			}
		}
		for col, v := range values {
			f.SetCellValue(SummarySheet, cellRef(col+1, row), v)
		}
		if s.cell != 0 {
			f.SetCellStyle(SummarySheet, cellRef(1, row), cellRef(3, row), s.cell)
			f.SetCellStyle(SummarySheet, cellRef(4, row), cellRef(len(headers), row), s.center)
		}
	}

	widths := []float64{20, 24, 20, 10, 14, 16}
	for i, w := range widths {
		col := colLetter(i + 1)
		f.SetColWidth(SummarySheet, col, col, w)
	}
	first, last := colLetter(len(widths)+1), colLetter(len(headers))
	f.SetColWidth(SummarySheet, first, last, 10)
	return nil
}

func writePlayerSheet(f *excelize.File, s styles, sheet string, players []league.Player) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeaders(f, s, sheet, PlayerHeaders)

	for i, p := range players {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), p.LastName)
		f.SetCellValue(sheet, cellRef(2, row), p.FirstName)
		f.SetCellValue(sheet, cellRef(3, row), p.HeightInches)
		f.SetCellValue(sheet, cellRef(4, row), yesNo(p.Experienced))
		if s.cell != 0 {
			f.SetCellStyle(sheet, cellRef(1, row), cellRef(2, row), s.cell)
			f.SetCellStyle(sheet, cellRef(3, row), cellRef(4, row), s.center)
		}
	}

	widths := map[string]float64{"A": 20, "B": 20, "C": 10, "D": 14}
	for col, w := range widths {
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
