package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ssui-theme/internal/config"
	"ssui-theme/internal/tui"
)

const (
	// offer the preset picker when no theme has been saved yet
	annotationSetup = "first-run-setup"
	// run without opening the database
	annotationSkipApp = "skip-app"
)

var (
	logStderr bool
	current   *app
)

var rootCmd = &cobra.Command{
	Use:   "ssuitheme",
	Short: "ssuitheme - color themes for the StationeersServerUI panel",
	Long: `ssuitheme manages the color theme of the StationeersServerUI control panel.

Pick one of the built-in presets, fine-tune individual colors in the
interactive editor, and share themes as JSON or load them into the web
panel as CSS.`,
	SilenceUsage: true,
	Annotations:  map[string]string{annotationSetup: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationSkipApp] == "true" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var console io.Writer
		if logStderr {
			console = cmd.ErrOrStderr()
		}

		a, err := openApp(cfg, console)
		if err != nil {
			return err
		}
		current = a

		current.store.Init(commandContext(cmd))

		if cmd.Annotations[annotationSetup] == "true" {
			return checkAndRunSetup(commandContext(cmd), cmd)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		err := current.Close()
		current = nil
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		displayWelcome(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false, "Write human-readable logs to stderr instead of the log file")
}

func Execute() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if current != nil {
			current.Close()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func displayWelcome(w io.Writer) {
	styles := current.styles()

	title := styles.Title.Render(`
		------------------------------------------------------

		       S S U I   T H E M E

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("Paint your StationeersServerUI panel")

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, subtitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ssuitheme theme' to open the editor, or 'ssuitheme --help' for all commands.")
	fmt.Fprintln(w)
}

// checks if initial setup is needed and runs it
func checkAndRunSetup(ctx context.Context, cmd *cobra.Command) error {
	if _, ok := current.store.SavedTheme(ctx); ok {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to ssuitheme! Let's pick a starting theme.")
	fmt.Fprintln(out)

	return runSetup(ctx, out)
}

func runSetup(ctx context.Context, out io.Writer) error {
	model := tui.NewSetupModel(ctx, current.store)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	setup, ok := final.(tui.SetupModel)
	if !ok {
		return nil
	}
	if err := setup.Err(); err != nil {
		return fmt.Errorf("failed to apply preset: %w", err)
	}

	fmt.Fprintln(out)
	if setup.Confirmed() {
		fmt.Fprintln(out, current.styles().Success.Render("✓ Theme configured"))
	} else {
		fmt.Fprintln(out, "Setup skipped. Built-in defaults stay active.")
	}
	fmt.Fprintln(out)
	return nil
}
