package jsondoc

import (
	"sync/atomic"

	"github.com/signadot/jsondoc/doc"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/parse"
)

// Config gathers the settings used when loading and dumping.
type Config struct {
	IndexBase int
	MaxDepth  int
	Indent    int
	Format    format.Format
	Wire      bool
}

var defaultConfig atomic.Pointer[Config]

func init() {
	defaultConfig.Store(&Config{
		IndexBase: 1,
		MaxDepth:  parse.DefaultMaxDepth,
		Indent:    2,
		Format:    format.JSONFormat,
	})
}

// DefaultConfig returns a copy of the process wide default.
func DefaultConfig() Config {
	return *defaultConfig.Load()
}

// SetDefaultConfig replaces the process wide default.
func SetDefaultConfig(c Config) {
	defaultConfig.Store(&c)
}

type Option func(*Config)

func WithIndexBase(n int) Option {
	return func(c *Config) { c.IndexBase = n }
}
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}
func WithIndent(n int) Option {
	return func(c *Config) { c.Indent = n }
}
func WithFormat(f format.Format) Option {
	return func(c *Config) { c.Format = f }
}
func WithWire(v bool) Option {
	return func(c *Config) { c.Wire = v }
}

// NewConfig applies opts to the default configuration.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, f := range opts {
		f(&c)
	}
	return c
}

func (c Config) DocOptions() []doc.Option {
	return []doc.Option{doc.WithConfig(doc.Config{IndexBase: c.IndexBase, MaxDepth: c.MaxDepth})}
}

func (c Config) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(c.Format),
		encode.Indent(c.Indent),
		encode.EncodeWire(c.Wire),
	}
}
