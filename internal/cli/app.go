package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"ssui-theme/internal/config"
	"ssui-theme/internal/logging"
	"ssui-theme/internal/notify"
	"ssui-theme/internal/repository"
	"ssui-theme/internal/repository/sqlite"
	"ssui-theme/internal/theme"
)

// app holds everything a command needs for one process run
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	logFile  io.WriteCloser
	db       *sqlite.DB
	settings repository.SettingsRepository
	history  repository.HistoryRepository
	store    *theme.Store
}

// openApp wires logging, the settings database and the theme store from cfg.
// A non-nil console receives human-readable logs instead of the log file.
func openApp(cfg *config.Config, console io.Writer) (*app, error) {
	a := &app{cfg: cfg}

	if console != nil {
		a.logger = logging.New(logging.Options{Level: cfg.LogLevel, Output: logging.Console(console)})
	} else {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		a.logFile = f
		a.logger = logging.New(logging.Options{Level: cfg.LogLevel, Output: f})
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.settings = sqlite.NewSettingsRepository(db)
	a.history = sqlite.NewHistoryRepository(db)

	store, err := theme.NewStore(theme.StoreOptions{
		Storage: &recordingStorage{
			SettingsRepository: a.settings,
			history:            a.history,
			logger:             a.logger.With().Str("component", "history").Logger(),
		},
		Environment: theme.NewPalette(theme.DefaultValues()),
		StorageKey:  cfg.StorageKey,
		Logger:      a.logger.With().Str("component", "store").Logger(),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create theme store: %w", err)
	}
	a.store = store

	a.logger.Debug().Str("db", cfg.DBPath).Str("key", cfg.StorageKey).Msg("app opened")
	return a, nil
}

func (a *app) durations() notify.Durations {
	return notify.Durations{
		Info:    a.cfg.Notify.Info(),
		Success: a.cfg.Notify.Success(),
		Error:   a.cfg.Notify.Error(),
	}
}

// styles derives CLI styles from the store's current theme
func (a *app) styles() *theme.Styles {
	return theme.NewStyles(a.store.CurrentTheme())
}

func (a *app) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}
