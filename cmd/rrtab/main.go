package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tkoide/rrtab/internal/config"
	"github.com/tkoide/rrtab/internal/excel"
	"github.com/tkoide/rrtab/internal/schedule"
	"github.com/tkoide/rrtab/internal/validator"
)

const defaultConfigFile = "config.yaml"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := rootCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rrtab",
		Short:         "Round-robin tournament table generator",
		SilenceErrors: true,
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	var configFile string
	var outputFile string
	generateCmd := &cobra.Command{
		Use:   "generate [count]",
		Short: "Generate a round-robin tournament workbook",
		Long: heredoc.Doc(`
			generate builds a complete round-robin schedule and writes it to an
			Excel workbook, one sheet per table.

			The participant count (3-24) comes from the argument, from the
			participants list in a config file, or from an interactive prompt
			when neither is given. Groups of more than 6 are split across
			tables so every table stays a manageable size.
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runGenerate(arg, configFile, outputFile, cmd.InOrStdin())
		},
	}
	generateCmd.Flags().StringVar(&configFile, "config", "", "Path to config file with a participant roster")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output Excel file path (default: tournament_<count>.xlsx)")

	validateCmd := &cobra.Command{
		Use:   "validate <tournament.xlsx>",
		Short: "Check a tournament workbook's schedule",
		Long: heredoc.Doc(`
			validate re-reads a generated workbook and checks that every pair
			still plays exactly once, that the match order keeps play counts
			level, and that 1P/2P seating stays balanced. Use it after editing
			a workbook by hand.
		`),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}

	rootCmd.AddCommand(initCmd, generateCmd, validateCmd)
	return rootCmd
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# Tournament Configuration
# ========================
# All fields are optional: "rrtab generate <count>" works without a
# config file and labels participants A, B, C...

# Display name, used for the default output file name when set.
name: ""

# Explicit roster (3-24 unique names). When present, the roster replaces
# the generated letter labels and its length is the participant count.
participants: []
#  - Alice
#  - Bob
#  - Carol

# Default output path for the generated workbook.
output: ""
`

func runGenerate(countArg, configPath, outputPath string, stdin io.Reader) error {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	participants, err := resolveParticipants(countArg, cfg, stdin)
	if err != nil {
		return err
	}

	tables := schedule.Build(participants)

	f, err := excel.Generate(tables)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}

	outputPath = resolveOutputPath(outputPath, cfg, len(participants))

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("✓ Tournament saved to %s\n\n", outputPath)
	fmt.Printf("Participants: %d\n", len(participants))
	fmt.Printf("Tables: %d\n", len(tables))
	for _, table := range tables {
		fmt.Printf("  %s: %d participants, %d matches (%s)\n",
			excel.SheetName(table, len(tables)),
			len(table.Participants), len(table.Matches),
			strings.Join(table.Participants, ", "))
	}
	return nil
}

// resolveOutputPath picks the workbook path: the --output flag, the
// config output, a file named after the config tournament name, then
// the count-derived default.
func resolveOutputPath(flagPath string, cfg *config.Config, count int) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg != nil {
		if cfg.Output != "" {
			return cfg.Output
		}
		if cfg.Name != "" {
			return cfg.Name + ".xlsx"
		}
	}
	return excel.DefaultFilename(count)
}

// resolveParticipants picks the roster from the count argument, the
// config roster, or an interactive prompt, in that order.
func resolveParticipants(countArg string, cfg *config.Config, stdin io.Reader) ([]string, error) {
	if countArg != "" {
		count, err := parseCount(countArg)
		if err != nil {
			return nil, err
		}
		return schedule.Participants(count), nil
	}

	if cfg != nil && len(cfg.Participants) > 0 {
		return cfg.Participants, nil
	}

	count, err := promptCount(stdin)
	if err != nil {
		return nil, err
	}
	return schedule.Participants(count), nil
}

// parseCount converts and range-checks a participant count, with a
// distinct message per failure mode.
func parseCount(s string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("participant count must be a number, got %q", s)
	}
	if err := config.ValidateCount(count); err != nil {
		return 0, err
	}
	return count, nil
}

func promptCount(stdin io.Reader) (int, error) {
	fmt.Printf("Enter the participant count (%d-%d): ", config.MinParticipants, config.MaxParticipants)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, fmt.Errorf("no participant count given")
	}
	return parseCount(scanner.Text())
}

func runValidate(schedulePath string) error {
	violations, err := validator.Validate(schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		label := v.Sheet
		if label != "" {
			label += ": "
		}
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ %s%s\n", label, v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ %s%s\n", label, v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d errors, %d warnings\n", errors, warnings)

	if errors > 0 {
		return fmt.Errorf("%d schedule violations found", errors)
	}
	return nil
}
