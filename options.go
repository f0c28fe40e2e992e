package blobvec

import (
	"log/slog"
	"time"

	"github.com/blobvec/blobvec/codec"
	"github.com/blobvec/blobvec/compress"
)

type options struct {
	codec            codec.Codec
	compressor       compress.Compressor
	keyPrefix        string
	keySuffix        string
	requestTimeout   time.Duration
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Client construction behavior.
type Option func(*options)

// WithCodec configures the codec used for record encoding.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures optional compression of stored objects.
// The default is compress.None, which keeps the plain JSON wire format.
//
// A client only reads the format it writes; do not mix compressed and
// uncompressed clients on the same collection.
func WithCompression(c compress.Compressor) Option {
	return func(o *options) {
		if c == nil {
			c = compress.None{}
		}
		o.compressor = c
	}
}

// WithKeyPrefix configures the key namespace records are stored under.
// Defaults to "vectors/".
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		o.keyPrefix = prefix
	}
}

// WithKeySuffix configures the key suffix appended to record ids.
// Defaults to ".json".
func WithKeySuffix(suffix string) Option {
	return func(o *options) {
		o.keySuffix = suffix
	}
}

// WithRequestTimeout bounds each individual store request.
// Zero (the default) means no client-side timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) {
		o.requestTimeout = d
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		compressor:       compress.None{},
		keyPrefix:        DefaultKeyPrefix,
		keySuffix:        DefaultKeySuffix,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
