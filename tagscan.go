package tagscan

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/tagscan/persistence"
)

// LoadOrBuild returns the tag cache for the given package source. If a
// valid artifact exists at the configured cache path it is loaded; any load
// failure (missing file, corruption, stale format) silently degrades to a
// full rebuild. Only context creation can fail.
func LoadOrBuild(ctx context.Context, src PackageSource, opt ...Option) (TagCache, error) {
	opts := defaultOptions()
	for _, o := range opt {
		o(opts)
	}

	setProgress(Status{Phase: PhaseLoadingCache})

	loadStart := time.Now()
	cache, err := persistence.Load(opts.cachePath)
	opts.metricsCollector.RecordCacheLoad(time.Since(loadStart), err)
	if err == nil {
		opts.logger.Info("loaded existing cache", "path", opts.cachePath, "entries", len(cache))
		setProgress(Status{Phase: PhaseIdle})
		return cache, nil
	}

	if errors.Is(err, persistence.ErrCacheAbsent) {
		opts.logger.Info("no cache file found, creating a new one", "path", opts.cachePath)
	} else {
		opts.logger.Warn("cache file is invalid, creating a new one", "path", opts.cachePath, "error", err)
	}

	return build(ctx, src, opts)
}

// Build unconditionally rebuilds the cache and persists it, ignoring any
// existing artifact.
func Build(ctx context.Context, src PackageSource, opt ...Option) (TagCache, error) {
	opts := defaultOptions()
	for _, o := range opt {
		o(opts)
	}
	return build(ctx, src, opts)
}

func build(ctx context.Context, src PackageSource, opts *options) (TagCache, error) {
	// The progress cell always returns to Idle, so a later rebuild
	// attempt starts from a known state.
	defer setProgress(Status{Phase: PhaseIdle})

	start := time.Now()

	setProgress(Status{Phase: PhaseCreatingContext})
	opts.logger.Info("creating scanner context")

	scanCtx, err := NewContext(src, opts.knownStringHashes)
	if err != nil {
		return nil, err
	}

	cache := walkPackages(ctx, src, scanCtx, opts)

	opts.logger.Info("transforming tag cache", "entries", len(cache))
	cache = Transform(cache, src.Hash64Table())

	setProgress(Status{Phase: PhaseWritingCache})
	opts.logger.Info("writing tag cache", "path", opts.cachePath)

	writeStart := time.Now()
	err = persistence.Save(opts.cachePath, cache, opts.compression)
	opts.metricsCollector.RecordCacheWrite(time.Since(writeStart), err)
	if err != nil {
		// The build's work is not wasted: the in-memory cache is
		// returned regardless, the next run just rebuilds.
		opts.logger.Error("failed to write cache", "path", opts.cachePath, "error", err)
	}

	opts.logger.Info("cache build finished", "entries", len(cache), "elapsed", time.Since(start))

	return cache, nil
}
