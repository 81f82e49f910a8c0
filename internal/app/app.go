// Package app wires the catalog source, ingestion store, asset cache, and
// UI together and owns the single ingestion goroutine.
package app

import (
	"context"
	"fmt"

	"github.com/tansell/skugrid/internal/assets"
	"github.com/tansell/skugrid/internal/catalog"
	"github.com/tansell/skugrid/internal/config"
	"github.com/tansell/skugrid/internal/logging"
	"github.com/tansell/skugrid/internal/prefs"
	"github.com/tansell/skugrid/internal/source"
	"github.com/tansell/skugrid/internal/state"
	"github.com/tansell/skugrid/internal/ui"
)

// Options configure the skugrid application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/skugrid/config.toml
	PrefsPath  string // empty uses default ~/.config/skugrid/prefs.toml
	Columns    int    // overrides the configured grid column count when > 0
	LogLevel   logging.Level
	LogFile    string // empty disables file logging
}

// Run boots the skugrid TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Columns > 0 {
		cfg.Columns = opts.Columns
	}

	log, err := logging.New(opts.LogLevel, opts.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	src, err := newSource(cfg)
	if err != nil {
		return fmt.Errorf("init catalog source: %w", err)
	}

	store := &state.Store{}
	loaded := make(chan state.Snapshot, 1)

	// Ingestion runs exactly once. A failure is terminal; the UI shows it
	// and never falls back to partial data.
	go ingest(ctx, src, store, log, loaded)

	uiOpts := ui.Options{
		Context:   ctx,
		Config:    &cfg,
		Store:     store,
		Assets:    assets.NewStore(cfg.ImagePath()),
		Log:       log,
		Loaded:    loaded,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newSource picks the catalog transport: HTTP when a URL is configured,
// the local export file otherwise.
func newSource(cfg config.Config) (source.Source, error) {
	if cfg.CatalogURL != "" {
		return source.NewHTTPSource(cfg.CatalogURL)
	}
	return source.FileSource{Path: cfg.CatalogPath()}, nil
}

// ingest performs the one-shot catalog load and hands the outcome to the
// UI through the store and the loaded channel.
func ingest(ctx context.Context, src source.Source, store *state.Store, log *logging.Logger, loaded chan<- state.Snapshot) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		log.Error("catalog ingestion failed: %v", err)
		store.Complete(nil, err)
		loaded <- store.Snapshot()
		return
	}

	records := catalog.Parse(raw)
	log.Info("catalog loaded: %d records", len(records))
	store.Complete(records, nil)
	loaded <- store.Snapshot()
}
