package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ssui-theme/internal/display"
	"ssui-theme/internal/domain"
	"ssui-theme/internal/repository"
	"ssui-theme/internal/theme"
)

// historyKeep bounds the snapshots kept per storage key
const historyKeep = 50

// recordingStorage persists theme writes through settings and keeps a copy
// of every write in the history table. History failures never fail a save.
type recordingStorage struct {
	repository.SettingsRepository
	history repository.HistoryRepository
	logger  zerolog.Logger
}

func (s *recordingStorage) Set(ctx context.Context, key, value string) error {
	if err := s.SettingsRepository.Set(ctx, key, value); err != nil {
		return err
	}

	snap := domain.NewSnapshot(key, value)
	if err := s.history.Record(ctx, snap); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to record theme history")
		return nil
	}
	if err := s.history.Prune(ctx, key, historyKeep); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to prune theme history")
	}
	return nil
}

var historyLimit int

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved themes",
	Long: `List the themes saved under the configured storage key, newest first.

Saving the same theme twice only moves it back to the top.`,
	RunE: runThemeHistory,
}

var themeRestoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a theme from history",
	Long: `Restore a previously saved theme by its history ID.

Examples:
  ssuitheme theme history
  ssuitheme theme restore 12`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeRestore,
}

func init() {
	themeCmd.AddCommand(themeHistoryCmd, themeRestoreCmd)

	themeHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show (0 for all)")
}

func runThemeHistory(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	styles := current.styles()

	snaps, err := current.history.List(ctx, current.cfg.StorageKey, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load theme history: %w", err)
	}

	if len(snaps) == 0 {
		fmt.Fprintln(out, "No saved themes yet.")
		return nil
	}

	saved, hasSaved := current.store.SavedTheme(ctx)
	now := time.Now()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Theme History "))
	fmt.Fprintln(out)

	for _, snap := range snaps {
		t, err := theme.ParseTheme(snap.Data)
		if err != nil {
			current.logger.Debug().Err(err).Int64("id", snap.ID).Msg("skipping unreadable snapshot")
			continue
		}

		var swatches strings.Builder
		for _, k := range []string{"--primary", "--bg-dark", "--accent"} {
			swatches.WriteString(theme.Swatch(t[k]))
		}

		active := hasSaved && saved.Equal(t)
		line := fmt.Sprintf("#%-4d %s %-10s %s", snap.ID, swatches.String(), t["--primary"], display.FormatAge(snap.UpdatedAt, now))
		if active {
			line = styles.Success.Render(line + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", display.GetCursor(active), line)
	}

	fmt.Fprintln(out)
	return nil
}

func runThemeRestore(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid history ID %q", args[0])
	}

	snap, err := current.history.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if snap.StorageKey != current.cfg.StorageKey {
		return fmt.Errorf("%w: id %d belongs to %q", repository.ErrSnapshotNotFound, id, snap.StorageKey)
	}

	if err := current.store.Import(ctx, snap.Data); err != nil {
		return fmt.Errorf("failed to restore theme: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), current.styles().Success.Render(fmt.Sprintf("✓ Theme #%d restored and saved", id)))
	return nil
}
