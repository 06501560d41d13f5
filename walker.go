package tagscan

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tagscan/tag"
)

// walkPackages scans every package in parallel and returns the flat tag
// cache, keyed by synthesized TagHash. Reference lists are not populated
// yet; that is the transform's job.
//
// Workers share only the read-only Context and the progress cell. Each
// worker fills its own slot of the results slice, so the merge after the
// join needs no locking. A failed entry read (or a package that cannot be
// opened at all) is logged and skipped; it never aborts the walk.
func walkPackages(ctx context.Context, src PackageSource, scanCtx *Context, opts *options) TagCache {
	paths := src.PackagePaths()
	total := len(paths)

	setProgress(Status{Phase: PhaseScanning, TotalPackages: total})

	results := make([]TagCache, total)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)

	for i, path := range paths {
		g.Go(func() error {
			start := time.Now()
			results[i] = scanPackage(src, scanCtx, path, opts)
			opts.metricsCollector.RecordPackageScan(len(results[i]), time.Since(start))

			current := bumpScanProgress(total)
			opts.logger.Debug("package scanned", "package", path, "current", current+1, "total", total)
			return nil
		})
	}

	// Hard barrier: the transform must see the complete flat cache.
	_ = g.Wait()

	merged := make(TagCache)
	for _, m := range results {
		for k, v := range m {
			merged[k] = v
		}
	}

	return merged
}

// scanPackage scans the content-bearing entries of one package.
func scanPackage(src PackageSource, scanCtx *Context, path string, opts *options) TagCache {
	log := opts.logger.WithPackage(path)

	pkg, err := src.Open(path)
	if err != nil {
		log.Error("failed to open package", "error", &ErrPackageOpen{Path: path, cause: err})
		return nil
	}

	// The Package interface does not promise fresh slices, so the two
	// entry lists are concatenated into a slice of our own before sorting.
	tagEntries := pkg.Entries(EntryTypeTag)
	wideEntries := pkg.Entries(EntryTypeTagWide)
	entries := make([]EntryInfo, 0, len(tagEntries)+len(wideEntries))
	entries = append(entries, tagEntries...)
	entries = append(entries, wideEntries...)

	// Sort by entry index so the package reader sees sequential block
	// reads. Locality only; the rest of the pipeline is order-independent.
	sort.Slice(entries, func(a, b int) bool { return entries[a].Index < entries[b].Index })

	results := make(TagCache, len(entries))
	for _, e := range entries {
		data, err := pkg.ReadEntry(e.Index)
		if err != nil {
			log.Error("failed to read entry", "entry", e.Index, "error", err)
			opts.metricsCollector.RecordEntryReadFailure()
			continue
		}

		h := tag.NewTagHash(pkg.ID(), e.Index)
		results[h] = Scan(scanCtx, data)
	}

	return results
}
