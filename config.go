package coda

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coda-lang/coda/internal/arena"
	"github.com/coda-lang/coda/internal/parser"
)

// Config holds configuration options for compilation.
type Config struct {
	// MaxDepth bounds the nesting of expressions, types and statements
	// (default: 256). Deeper input fails with a structural diagnostic.
	MaxDepth int

	// ArenaBlockSize is the size of the first arena block in bytes
	// (default: 1024).
	ArenaBlockSize int

	// ArenaLimit caps the bytes the unit's arena may reserve.
	// Zero means no limit. Hitting it fails with a resource diagnostic.
	ArenaLimit int

	// Logger receives debug entries about each compilation.
	// If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}
	if c.ArenaBlockSize <= 0 {
		c.ArenaBlockSize = arena.DefaultBlockSize
	}
	if c.ArenaLimit < 0 {
		c.ArenaLimit = 0
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
}
