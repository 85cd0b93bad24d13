package doc

import (
	"fmt"

	"github.com/signadot/jsondoc/parse"
)

// Config holds the settings of an open document.
type Config struct {
	// IndexBase is the path index of the first array element.
	IndexBase int
	// MaxDepth bounds container nesting while parsing.
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{IndexBase: 1, MaxDepth: parse.DefaultMaxDepth}
}

func (c Config) validate() error {
	if c.IndexBase < 0 {
		return fmt.Errorf("%w: negative index base %d", ErrConfig, c.IndexBase)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d", ErrConfig, c.MaxDepth)
	}
	return nil
}

type Option func(*Config)

func IndexBase(n int) Option {
	return func(c *Config) { c.IndexBase = n }
}

func MaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithConfig replaces the whole configuration; later options still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
