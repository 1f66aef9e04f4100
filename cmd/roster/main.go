package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/derekprior/roster/internal/config"
	"github.com/derekprior/roster/internal/excel"
	"github.com/derekprior/roster/internal/league"
	"github.com/derekprior/roster/internal/logging"
	"github.com/derekprior/roster/internal/report"
	"github.com/derekprior/roster/internal/shell"
	"github.com/derekprior/roster/internal/validator"
)

const defaultConfigFile = "league.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Sports league roster organizer",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	newLogger := func() *slog.Logger {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		return logging.New(os.Stderr, level)
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter league.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	var configFile string
	addConfigFlag := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&configFile, "config", "", "Path to config file (default: league.yaml in current directory)")
	}

	playCmd := &cobra.Command{
		Use:          "play",
		Short:        "Organize teams from an interactive menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runPlay(configPath, cmd.InOrStdin(), cmd.OutOrStdout(), newLogger())
		},
	}
	addConfigFlag(playCmd)

	var reportAuto bool
	reportCmd := &cobra.Command{
		Use:          "report",
		Short:        "Print balance and experience reports for the configured teams",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), configPath, reportAuto, newLogger())
		},
	}
	addConfigFlag(reportCmd)
	reportCmd.Flags().BoolVar(&reportAuto, "auto", false, "Auto-assign unassigned players before reporting")

	var exportAuto bool
	var exportPath string
	exportCmd := &cobra.Command{
		Use:          "export",
		Short:        "Write the league rosters to an Excel workbook",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), configPath, exportPath, exportAuto, newLogger())
		},
	}
	addConfigFlag(exportCmd)
	exportCmd.Flags().BoolVar(&exportAuto, "auto", false, "Auto-assign unassigned players before exporting")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", shell.DefaultExportPath, "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <roster.xlsx>",
		Short:        "Check an edited roster workbook against the league rules",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}

	rootCmd.AddCommand(initCmd, playCmd, reportCmd, exportCmd, validateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(w io.Writer, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "✓ Created %s\n", outputPath)
	return nil
}

// loadLeague builds the league described by configPath, optionally filling
// every team from the unassigned pool.
func loadLeague(w io.Writer, configPath string, auto bool, logger *slog.Logger) (*league.League, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building league: %w", err)
	}
	logging.Debug(logger, "league loaded", logging.FieldPath, configPath,
		logging.FieldCount, l.TotalPlayers(), "teams", l.TeamCount())

	if !auto {
		return l, nil
	}
	moved, err := l.AutoAssign()
	switch {
	case errors.Is(err, league.ErrNothingToAssign):
		fmt.Fprintln(w, "⚠ No unassigned players to auto-assign")
	case err != nil:
		return nil, fmt.Errorf("auto-assigning: %w", err)
	default:
		fmt.Fprintf(w, "✓ Assigned %d players, %d left unassigned\n", moved, l.UnassignedCount())
	}
	if l.UnassignedCount() > 0 {
		logging.Warn(logger, "players left unassigned", logging.FieldUnassigned, l.UnassignedCount())
	}
	return l, nil
}

func runPlay(configPath string, in io.Reader, out io.Writer, logger *slog.Logger) error {
	l, err := loadLeague(out, configPath, false, logger)
	if err != nil {
		return err
	}
	return shell.New(l, in, out, shell.WithLogger(logger)).Run()
}

func runReport(w io.Writer, configPath string, auto bool, logger *slog.Logger) error {
	l, err := loadLeague(w, configPath, auto, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d teams, %d players, %d unassigned\n", l.TeamCount(), l.TotalPlayers(), l.UnassignedCount())
	if l.TeamCount() == 0 {
		fmt.Fprintln(w, "\n⚠ No teams configured")
		return nil
	}

	for _, t := range l.Teams() {
		fmt.Fprintln(w)
		b, err := report.Balance(t)
		if errors.Is(err, report.ErrEmptyTeam) {
			fmt.Fprintf(w, "⚠ %s has zero players\n", t.Name)
			continue
		}
		if err != nil {
			return err
		}
		report.WriteBalance(w, b)
	}

	fmt.Fprintln(w, "\nExperience:")
	report.WriteExperience(w, l.Teams(), report.Experience(l))
	return nil
}

func runExport(w io.Writer, configPath, outputPath string, auto bool, logger *slog.Logger) error {
	l, err := loadLeague(w, configPath, auto, logger)
	if err != nil {
		return err
	}

	f, err := excel.Generate(l)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Fprintf(w, "✓ Roster saved to %s\n", outputPath)
	return nil
}

func runValidate(w io.Writer, rosterPath string) error {
	violations, err := validator.Validate(rosterPath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		where := v.Sheet
		if v.Row > 0 {
			where = fmt.Sprintf("%s row %d", v.Sheet, v.Row)
		}
		switch v.Type {
		case "error":
			errors++
			fmt.Fprintf(w, "✗ Rule violation (%s): %s\n", where, v.Message)
		case "warning":
			warnings++
			fmt.Fprintf(w, "⚠ Warning (%s): %s\n", where, v.Message)
		}
	}

	fmt.Fprintf(w, "\nValidation complete: %d rule violations, %d warnings\n", errors, warnings)
	if errors > 0 {
		return fmt.Errorf("%d roster violations found", errors)
	}
	return nil
}
