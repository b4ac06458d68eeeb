package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/five82/patternview/internal/config"
	"github.com/five82/patternview/internal/logging"
	"github.com/five82/patternview/internal/objstore"
	"github.com/five82/patternview/internal/report"
	"github.com/five82/patternview/internal/state"
	"github.com/five82/patternview/internal/ui"
)

// ErrNoSource is returned when neither a local file nor a complete report
// key is given.
var ErrNoSource = errors.New("either --from-local or all of --namespace, --name, --year and --month are required")

// Options configure the patternview application. Non-empty fields override
// the config file.
type Options struct {
	ConfigPath string

	LocalPath string
	Namespace string
	App       string
	Year      int
	Month     int

	Bucket   string
	Profile  string
	Region   string
	Endpoint string
	Theme    string
	Verbose  bool
}

// Validate checks that the options name exactly one report.
func (o Options) Validate() error {
	if strings.TrimSpace(o.LocalPath) != "" {
		return nil
	}
	if strings.TrimSpace(o.Namespace) == "" || strings.TrimSpace(o.App) == "" || o.Year == 0 || o.Month == 0 {
		return ErrNoSource
	}
	if o.Month < 1 || o.Month > 12 {
		return fmt.Errorf("month %d out of range 1..12", o.Month)
	}
	if o.Year < 1970 || o.Year > 9999 {
		return fmt.Errorf("year %d out of range", o.Year)
	}
	return nil
}

// Run loads the report and runs the viewer until the user quits or the
// context is cancelled. A report that cannot be loaded is returned as an
// error.
func Run(ctx context.Context, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closer, err := logging.New(cfg.LogFile, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	src, err := buildSource(ctx, cfg, opts)
	if err != nil {
		return err
	}
	logger.Info().Str("source", src.Describe()).Str("theme", cfg.Theme).Msg("starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	done := StartLoader(ctx, store, src, LoaderOptions{
		Attempts: cfg.FetchAttempts,
		Logger:   logging.Component(logger, "loader"),
	})

	runErr := ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: cfg.Theme,
		Logger:    logging.Component(logger, "ui"),
	})

	cancel()
	<-done
	if runErr != nil {
		logger.Error().Err(runErr).Msg("exiting with error")
	}
	return runErr
}

func applyOverrides(cfg *config.Config, opts Options) {
	set := func(dst *string, value string) {
		if v := strings.TrimSpace(value); v != "" {
			*dst = v
		}
	}
	set(&cfg.Bucket, opts.Bucket)
	set(&cfg.Profile, opts.Profile)
	set(&cfg.Region, opts.Region)
	set(&cfg.Endpoint, opts.Endpoint)
	set(&cfg.Theme, opts.Theme)
}

func buildSource(ctx context.Context, cfg config.Config, opts Options) (report.Source, error) {
	if path := strings.TrimSpace(opts.LocalPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("resolve report path: %w", err)
		}
		return report.FileSource{Path: expanded}, nil
	}

	client, err := objstore.NewClient(ctx, objstore.Options{
		Region:   cfg.Region,
		Profile:  cfg.Profile,
		Endpoint: cfg.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return objstore.ReportSource{
		Client: client,
		Bucket: cfg.Bucket,
		Key:    report.ObjectKey(cfg.ReportPrefix, opts.Namespace, opts.App, opts.Year, opts.Month),
	}, nil
}
