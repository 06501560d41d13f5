package tagscan

import (
	"runtime"

	"github.com/hupe1980/tagscan/persistence"
)

// DefaultCachePath is the well-known location of the cache artifact.
const DefaultCachePath = "cache.bin"

type options struct {
	cachePath         string
	workers           int
	compression       persistence.Compression
	knownStringHashes []uint32
	logger            *Logger
	metricsCollector  MetricsCollector
}

// Option configures cache build/load behavior.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		cachePath:        DefaultCachePath,
		workers:          runtime.GOMAXPROCS(0),
		compression:      persistence.CompressionZSTD,
		logger:           NewLogger(nil),
		metricsCollector: NoopMetricsCollector{},
	}
}

// WithCachePath sets the path of the on-disk cache artifact.
//
// If path is empty, DefaultCachePath is used.
func WithCachePath(path string) Option {
	return func(o *options) {
		if path == "" {
			path = DefaultCachePath
		}
		o.cachePath = path
	}
}

// WithWorkers bounds the number of packages scanned concurrently.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithCompression selects the compression codec for the cache artifact.
// The default is zstd at a moderate level; see persistence.Compression.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithKnownStringHashes supplies the set of string hashes the entry scanner
// should flag in addition to the empty-string sentinel. The set is empty by
// default; this is the extension point for wiring in an external string
// database.
func WithKnownStringHashes(hashes []uint32) Option {
	return func(o *options) {
		o.knownStringHashes = hashes
	}
}

// WithMetricsCollector sets the collector notified by the build pipeline.
//
// If collector is nil, metrics are discarded.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithLogger sets the logger used by the build pipeline.
//
// If logger is nil, a default text logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NewLogger(nil)
		}
		o.logger = logger
	}
}
