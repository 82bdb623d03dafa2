package colorizer

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/colordoll/pkg/color"
	"github.com/arthur-debert/colordoll/pkg/config"
	"github.com/arthur-debert/colordoll/pkg/logging"
)

// Colorizer is the rendering engine. The color table is built once at
// construction and read-only afterwards; the only mutable state is the
// selected output handler, which is guarded for concurrent callers.
type Colorizer struct {
	table  *color.Table
	logger zerolog.Logger

	mu      sync.RWMutex
	handler OutputHandler
}

type options struct {
	configFile string
	overrides  map[string]interface{}
}

// Option configures a Colorizer at construction time.
type Option func(*options)

// WithConfigFile loads color overrides from a JSON document at path.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithOverrides supplies color overrides from an in-memory mapping of
// name -> {"code": <int>, ...}.
func WithOverrides(src map[string]interface{}) Option {
	return func(o *options) { o.overrides = src }
}

// New builds a Colorizer from the built-in palette plus any configured
// overrides. Malformed or unreadable config is a construction-time error;
// rendering itself never fails.
func New(opts ...Option) (*Colorizer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.GetLogger("colorizer")

	merged := make(map[string]int)
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		for name, code := range loaded {
			merged[name] = code
		}
		logger.Debug().Str("path", o.configFile).Int("entries", len(loaded)).Msg("Loaded color config file")
	}
	if o.overrides != nil {
		loaded, err := config.FromMap(o.overrides)
		if err != nil {
			return nil, err
		}
		for name, code := range loaded {
			merged[name] = code
		}
	}

	return &Colorizer{
		table:  color.NewTable(merged),
		logger: logger,
	}, nil
}

// Table exposes the engine's color table for read-only lookups.
func (c *Colorizer) Table() *color.Table {
	return c.table
}
