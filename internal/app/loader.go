package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/patternview/internal/objstore"
	"github.com/five82/patternview/internal/report"
	"github.com/five82/patternview/internal/state"
)

const (
	defaultRetryBase = time.Second
	maxBackoff       = 30 * time.Second
)

// LoaderOptions configures StartLoader.
type LoaderOptions struct {
	Attempts  int           // zero means a single attempt
	RetryBase time.Duration // first backoff; zero uses one second
	Logger    zerolog.Logger
}

// StartLoader launches a background goroutine that loads the report from
// src into store, retrying failed downloads with capped exponential
// backoff. It returns immediately; the returned channel is closed once the
// store holds the final outcome.
func StartLoader(ctx context.Context, store *state.Store, src report.Source, opts LoaderOptions) <-chan struct{} {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	base := opts.RetryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	logger := opts.Logger.With().Str("source", src.Describe()).Logger()

	store.Begin(src.Describe())
	done := make(chan struct{})
	go func() {
		defer close(done)

		for failures := 0; ; failures++ {
			patterns, err := load(ctx, src)
			store.Update(patterns, err)
			if err == nil {
				logger.Info().Int("patterns", len(patterns)).Msg("report loaded")
				return
			}

			final := failures+1 >= attempts || !retryable(ctx, err)
			logger.Warn().Err(err).Int("attempt", failures+1).Bool("final", final).Msg("report load failed")
			if final {
				store.Fail(err)
				return
			}

			wait := calculateBackoff(failures, base)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				store.Fail(ctx.Err())
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

// load fetches and parses the report. Fetch and parse are split so that
// only fetch errors are candidates for a retry.
func load(ctx context.Context, src report.Source) ([]report.Pattern, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, &fetchError{err: err}
	}
	return report.Parse(data)
}

type fetchError struct {
	err error
}

func (e *fetchError) Error() string { return e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

// retryable reports whether a failed load may succeed on another attempt.
// Parse errors and missing objects are permanent. A deadline that fired
// inside the fetch, such as the per-request timeout, is retried unless the
// loader's own context is done.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var fe *fetchError
	if !errors.As(err, &fe) {
		return false
	}
	switch {
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, os.ErrNotExist), errors.Is(err, objstore.ErrNotFound):
		return false
	default:
		return true
	}
}

// calculateBackoff returns the wait before the next attempt after the given
// number of consecutive failures: base doubled per failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
