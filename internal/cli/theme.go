package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ssui-theme/internal/color"
	"ssui-theme/internal/display"
	"ssui-theme/internal/export"
	"ssui-theme/internal/fuzzy"
	"ssui-theme/internal/theme"
	"ssui-theme/internal/tui"
)

var (
	exportOutput string
	exportFormat string
	cssOutput    string
	setForce     bool
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Edit and manage the panel theme",
	Long: `Edit and manage the StationeersServerUI panel theme.

Run without arguments to launch the interactive theme editor.
Use subcommands for direct theme management.

Examples:
  ssuitheme theme                        # Launch the editor
  ssuitheme theme apply "Neon Blue"      # Apply and save a preset
  ssuitheme theme set -- --primary '#ff00aa'
  ssuitheme theme export -o my-theme.json
  ssuitheme theme css -o theme.css`,
	Annotations: map[string]string{annotationSetup: "true"},
	RunE:        runThemeEditor,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in presets",
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	Long:  `Display every theme variable with its current value and where it comes from.`,
	RunE:  runThemeShow,
}

var themeVarsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List themeable variables",
	RunE:  runThemeVars,
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply [preset-name]",
	Short: "Apply and save a preset",
	Long: `Apply one of the built-in presets and save it as the current theme.

Examples:
  ssuitheme theme apply Kiruna
  ssuitheme theme apply "Neon Blue"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runThemeApply,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [variable] [color]",
	Short: "Set a single theme variable",
	Long: `Set one variable and save the resulting theme.

Colors must be hex values (# followed by 3 to 8 hex digits) unless --force
is given, in which case the value is stored as-is.

Examples:
  ssuitheme theme set -- --primary '#00d4ff'
  ssuitheme theme set --force -- --bg-panel 'rgba(18,18,42,0.56)'`,
	Args: cobra.ExactArgs(2),
	RunE: runThemeSet,
}

var themeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current effective theme",
	Long:  `Persist the value of every variable as it is currently in effect.`,
	RunE:  runThemeSave,
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset to the built-in defaults",
	RunE:  runThemeReset,
}

var themeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the theme",
	Long: `Export the saved theme, or the current one when nothing is saved.

Supported formats:
  - json: the document 'theme import' and the editor accept (default)
  - css: a :root block for the web panel
  - csv: one row per variable
  - markdown: grouped tables
  - yaml, toml: the json document in another encoding

Examples:
  ssuitheme theme export
  ssuitheme theme export --format css --output theme.css`,
	RunE: runThemeExport,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import a theme JSON document",
	Long: `Import a theme from a JSON file, or from stdin when the argument is '-'
or omitted. The theme is saved and becomes the current theme.

Examples:
  ssuitheme theme import my-theme.json
  cat my-theme.json | ssuitheme theme import -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeImport,
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Render the theme as CSS custom properties",
	RunE:  runThemeCSS,
}

var themeSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pick a starting preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(commandContext(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(
		themeListCmd,
		themeShowCmd,
		themeVarsCmd,
		themeApplyCmd,
		themeSetCmd,
		themeSaveCmd,
		themeResetCmd,
		themeExportCmd,
		themeImportCmd,
		themeCSSCmd,
		themeSetupCmd,
	)

	themeSetCmd.Flags().BoolVar(&setForce, "force", false, "Store the value even if it is not a hex color")

	themeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	themeExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, css, csv, markdown, yaml, toml)")

	themeCSSCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "Output file (default: stdout)")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// launches the interactive editor
func runThemeEditor(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	editor := tui.NewEditor(ctx, tui.EditorOptions{
		Store:     current.store,
		Durations: current.durations(),
		Logger:    current.logger.With().Str("component", "editor").Logger(),
	})

	p := tea.NewProgram(editor, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run theme editor: %w", err)
	}
	return nil
}

// lists the presets, marking the one that matches the saved theme
func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := current.styles()
	saved, hasSaved := current.store.SavedTheme(commandContext(cmd))
	presets := current.store.Presets()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Presets "))
	fmt.Fprintln(out)

	for _, name := range current.store.PresetNames() {
		preset := presets[name]

		var swatches strings.Builder
		for _, k := range []string{"--primary", "--bg-dark", "--accent", "--danger", "--success"} {
			swatches.WriteString(theme.Swatch(preset[k]))
		}

		active := hasSaved && saved.Equal(preset)
		label := name
		if active {
			label = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s %s\n", display.GetCursor(active), swatches.String(), label)
	}

	fmt.Fprintln(out)
	return nil
}

// displays every variable with its value
func runThemeShow(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	styles := current.styles()
	currentTheme := current.store.CurrentTheme()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Current Theme "))
	fmt.Fprintln(out, styles.Subtitle.Render(themeSource(ctx)))
	fmt.Fprintln(out)

	for _, g := range current.store.Groups() {
		fmt.Fprintln(out, styles.Info.Render(g.Name))
		for _, v := range g.Variables {
			value := currentTheme[v.Key]
			fmt.Fprintf(out, "  %s %-18s %-12s %s\n", theme.Swatch(value), v.Key, value, styles.Subtitle.Render(v.Label))
		}
		fmt.Fprintln(out)
	}

	if saved, ok := current.store.SavedTheme(ctx); ok {
		var extra []string
		for _, k := range saved.Keys() {
			if _, known := currentTheme[k]; !known {
				extra = append(extra, k)
			}
		}
		if len(extra) > 0 {
			fmt.Fprintln(out, styles.Warning.Render("Unrecognized saved keys (kept as-is)"))
			for _, k := range extra {
				fmt.Fprintf(out, "  %-18s %s\n", k, saved[k])
			}
			fmt.Fprintln(out)
		}
	}

	return nil
}

// themeSource describes where the current values come from
func themeSource(ctx context.Context) string {
	if _, ok := current.store.SavedTheme(ctx); !ok {
		return "Source: built-in defaults"
	}

	settings, err := current.settings.List(ctx)
	if err != nil {
		current.logger.Warn().Err(err).Msg("failed to list settings")
		return "Source: saved theme"
	}
	for _, s := range settings {
		if s.Key == current.cfg.StorageKey {
			return fmt.Sprintf("Source: saved theme (updated %s)", display.FormatAge(s.UpdatedAt, time.Now()))
		}
	}
	return "Source: saved theme"
}

// lists the registry grouped with descriptions
func runThemeVars(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := current.styles()

	fmt.Fprintln(out)
	for _, g := range current.store.Groups() {
		fmt.Fprintln(out, styles.Header.Render(" "+g.Name+" "))
		for _, v := range g.Variables {
			fmt.Fprintf(out, "  %-18s %-16s %s\n", v.Key, v.Label, styles.Subtitle.Render(v.Description))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runThemeApply(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	err := current.store.ApplyPreset(commandContext(cmd), name)
	if errors.Is(err, theme.ErrPresetNotFound) {
		if matches := fuzzy.MatchMany(name, current.store.PresetNames(), fuzzy.DefaultThreshold); len(matches) > 0 {
			return fmt.Errorf("preset '%s' not found, did you mean '%s'? Run 'ssuitheme theme list' to see all presets", name, matches[0].Text)
		}
		return fmt.Errorf("preset '%s' not found. Run 'ssuitheme theme list' to see all presets", name)
	}
	if err != nil {
		return err
	}

	styles := current.styles()
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Theme \"%s\" applied and saved", name)))
	return nil
}

// sets one variable and persists the result
func runThemeSet(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	key, value := args[0], strings.TrimSpace(args[1])

	if !setForce && !color.LooksLikeHex(value) {
		return fmt.Errorf("invalid color %q: expected # followed by 3 to 8 hex digits (use --force to store it anyway)", value)
	}

	if err := current.store.SetValue(key, value); err != nil {
		if errors.Is(err, theme.ErrUnknownVariable) {
			return fmt.Errorf("%w. Run 'ssuitheme theme vars' to see all variables", err)
		}
		return err
	}

	saved, ok := current.store.SavedTheme(ctx)
	if !ok {
		saved = current.store.CurrentTheme()
	}
	saved[key] = value
	if err := current.store.SaveTheme(ctx, saved); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		current.styles().Success.Render("✓ Set"), key, theme.Swatch(value)+" "+value)
	return nil
}

func runThemeSave(cmd *cobra.Command, args []string) error {
	if err := current.store.SaveTheme(commandContext(cmd), current.store.CurrentTheme()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), current.styles().Success.Render("✓ Theme saved"))
	return nil
}

func runThemeReset(cmd *cobra.Command, args []string) error {
	if err := current.store.ClearTheme(commandContext(cmd)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), current.styles().Info.Render("Theme reset to defaults"))
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	exporter, err := export.NewExporter(format, current.store)
	if err != nil {
		return err
	}

	return writeOutput(cmd, exportOutput, func(w io.Writer) error {
		return exporter.Export(commandContext(cmd), w)
	})
}

func runThemeCSS(cmd *cobra.Command, args []string) error {
	exporter := export.NewCSSExporter(current.store)
	return writeOutput(cmd, cssOutput, func(w io.Writer) error {
		return exporter.Export(commandContext(cmd), w)
	})
}

// writeOutput sends write's output to path, or to the command's stdout when
// path is empty
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), current.styles().Success.Render("✓ Exported to "+path))
	return f.Close()
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	source := "stdin"

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open theme file: %w", err)
		}
		defer f.Close()
		r = f
		source = args[0]
	}

	if err := export.NewImporter(current.store).ImportTheme(commandContext(cmd), r); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), current.styles().Success.Render("✓ Theme imported from "+source))
	return nil
}
