// Package tagscan builds and serves the package tag cache: a persistent
// index mapping every content entry in a package set to the identifiers
// embedded in its raw bytes, and to the set of other entries that reference
// it.
//
// The pipeline has four phases:
//
//   - Context creation: snapshot the hash universe (every valid 32-bit entry
//     identifier, every known 64-bit alternate identifier, the known string
//     hashes) into an immutable Context shared by all workers.
//   - Scanning: walk every package in parallel, read every content-bearing
//     entry and scan its bytes for identifier candidates.
//   - Transform: invert the forward scan into per-entry reference lists
//     (who references me), in two passes over the flat cache.
//   - Persistence: serialize, compress and atomically write the cache to
//     disk; the next run loads it instead of rebuilding.
//
// # Quick Start
//
//	cache, err := tagscan.LoadOrBuild(ctx, source,
//	    tagscan.WithCachePath("cache.bin"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ref := range cache[someTag].References {
//	    fmt.Println(ref)
//	}
//
// A UI (or any other observer) can poll build progress from another
// goroutine at any time:
//
//	status := tagscan.Progress()
//	fmt.Println(status) // e.g. "Creating new cache 37/512"
//
// A missing or corrupt cache artifact is never an error: LoadOrBuild
// degrades to a full rebuild. Only a package source that cannot enumerate
// its packages at all is fatal.
package tagscan
