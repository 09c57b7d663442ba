package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/profileform/internal/config"
	"github.com/muurk/profileform/internal/feedback"
	"github.com/muurk/profileform/internal/logging"
	"github.com/muurk/profileform/internal/tui"
	"github.com/muurk/profileform/internal/ui"
)

// Form and check flags
var (
	nameFlag     string
	ageFlag      string
	noAltScreen  bool
	outputFormat string
	forceInit    bool
)

// errRejected is returned by check when the submission fails validation
var errRejected = errors.New("profile rejected")

func init() {
	formCmd.Flags().StringVar(&nameFlag, "name", "", "Prefill the name field")
	formCmd.Flags().StringVar(&ageFlag, "age", "", "Prefill the age field")
	formCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Draw the form inline instead of on the alternate screen")

	checkCmd.Flags().StringVar(&nameFlag, "name", "", "Name to submit")
	checkCmd.Flags().StringVar(&ageFlag, "age", "", "Age to submit")
	checkCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// formCmd launches the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive form",
	Long: `Open the interactive name and age form.

Fields are validated on every keystroke. Tab and Shift+Tab move between
fields, Enter submits, Esc or Ctrl+C quits.`,
	Example: `  # Empty form
  profileform form

  # Start with values already filled in
  profileform form --name "Ada Lovelace" --age 36`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the form needs a terminal; use 'profileform check' for scripted input")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Feedback: feedbackOptions(cfg),
		ShowHelp: cfg.Display.ShowHelp,
		Name:     nameFlag,
		Age:      ageFlag,
	})

	var programOpts []tea.ProgramOption
	if cfg.Display.AltScreen && !noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logging.Info("Starting form", zap.Bool("alt_screen", len(programOpts) > 0))

	p := tea.NewProgram(model, programOpts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		printLastOutcome(cmd.OutOrStdout(), m.Controller().LastOutcome())
	}
	return nil
}

// printLastOutcome echoes the last accepted submission after the form closes
func printLastOutcome(out io.Writer, outcome *feedback.Outcome) {
	if outcome == nil || !outcome.Accepted {
		return
	}
	printer := ui.NewPrinter(out)
	printer.Print(ui.NewSuccessResult("Profile accepted", outcome.Summary).SetWidth(printer.Width()))
}

// checkCmd runs one submission without the interactive form
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a name and age without opening the form",
	Long: `Run a single submission through the same validation the form uses
and print the outcome.

The command exits with status 1 when the submission is rejected, so it can
be used in scripts.`,
	Example: `  # Human readable output
  profileform check --name "Ada Lovelace" --age 36

  # JSON output for scripting
  profileform check --name Bob --age 200 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = runCheck(cmd.OutOrStdout(), feedbackOptions(cfg), nameFlag, ageFlag, outputFormat)
		return err
	},
}

// runCheck types name and age into a controller backed by a console surface,
// submits, and writes the outcome to out in the requested format.
func runCheck(out io.Writer, opts feedback.Options, name, age, format string) (feedback.Outcome, error) {
	if format != "text" && format != "json" {
		return feedback.Outcome{}, fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	surface := ui.NewConsoleSurface()
	ctrl := feedback.NewController(surface, opts)
	ctrl.Start()
	defer ctrl.Close()

	ctrl.SetName(name)
	ctrl.SetAge(age)
	outcome := ctrl.Submit()

	switch format {
	case "json":
		data, err := json.MarshalIndent(outcome.Report(), "", "  ")
		if err != nil {
			return outcome, fmt.Errorf("failed to marshal outcome: %w", err)
		}
		fmt.Fprintln(out, string(data))

	default:
		printer := ui.NewPrinter(out)
		header := ui.NewHeader("Profile check", "profileform check",
			ui.Param{Key: "Name", Value: name},
			ui.Param{Key: "Age", Value: age},
		).SetWidth(printer.Width())
		printer.Print(header)
		printer.PrintText(surface.SetWidth(printer.Width()).Render())
	}

	if !outcome.Accepted {
		return outcome, fmt.Errorf("%w: %s", errRejected, outcome.FirstReason())
	}
	return outcome, nil
}

func feedbackOptions(cfg *config.Config) feedback.Options {
	return feedback.Options{
		HighlightDelay: cfg.Form.HighlightDelay,
		Placeholder:    cfg.Form.Placeholder,
	}
}

// configCmd groups the config file subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Show, create or locate the profileform configuration file.

Values in the file can be overridden with PROFILEFORM_* environment
variables or a .env file in the working directory.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Example: `  # Create the default config file
  profileform config init

  # Replace an existing file without prompting
  profileform config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		return initConfig(os.Stdin, cmd.OutOrStdout(), path, forceInit)
	},
}

// initConfig writes the defaults to path, asking before it replaces a file
func initConfig(in io.Reader, out io.Writer, path string, force bool) error {
	err := config.CreateDefaultConfig(path, force)
	if errors.Is(err, os.ErrExist) {
		confirmed := ui.Confirm(in, out, "Config file exists", []string{
			path + " already exists",
			"Its contents will be replaced with the defaults",
		})
		if !confirmed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		err = config.CreateDefaultConfig(path, true)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Wrote default configuration to %s\n", path)
	return nil
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
