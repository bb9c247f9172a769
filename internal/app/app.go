package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/christoffel/internal/config"
	"github.com/five82/christoffel/internal/flow"
	"github.com/five82/christoffel/internal/menu"
	"github.com/five82/christoffel/internal/prefs"
	"github.com/five82/christoffel/internal/state"
	"github.com/five82/christoffel/internal/ui"
)

// Options configure the Christoffel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/christoffel/prefs.toml
	Debug      bool   // log navigation at debug level
}

// runtime holds everything Run wires together before the UI starts.
type runtime struct {
	cfg       config.Config
	prefs     prefs.Prefs
	prefsPath string
	logger    *zap.SugaredLogger
	closeLog  func()
	store     *state.Store
	flow      *flow.Flow
}

// Run boots the Christoffel TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.closeLog()

	rt.logger.Infow("menu ready", "dishes", rt.store.Snapshot().Len(), "restaurant", rt.cfg.RestaurantName)
	defer rt.logger.Infow("shutting down")

	return ui.Run(ui.Options{
		Context:   ctx,
		Flow:      rt.flow,
		Config:    rt.cfg,
		Prefs:     rt.prefs,
		PrefsPath: rt.prefsPath,
		LogPath:   rt.cfg.LogPath(),
		Logger:    rt.logger,
	})
}

func setup(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger, closeLog, err := NewLogger(cfg.LogPath(), opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("open activity log: %w", err)
	}

	store := state.NewStore(menu.DefaultDishes(), logger)
	return &runtime{
		cfg:       cfg,
		prefs:     prefs.Load(prefsPath),
		prefsPath: prefsPath,
		logger:    logger,
		closeLog:  closeLog,
		store:     store,
		flow:      flow.New(store, logger),
	}, nil
}

// NewLogger returns a sugared zap logger writing JSON lines to path. The
// terminal belongs to the UI, so nothing is written to stdout or stderr.
// The returned func flushes the logger.
func NewLogger(path string, debug bool) (*zap.SugaredLogger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
