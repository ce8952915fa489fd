package headreader

import "github.com/rs/zerolog"

const (
	// DefaultMaxHeadSize is used when Config.MaxHeadSize is zero.
	DefaultMaxHeadSize = 8 * 1024
	// DefaultMaxBodySize is used when Config.MaxBodySize is zero.
	DefaultMaxBodySize = 4 * 1024 * 1024
)

// Config configures a Reader. The zero value is usable.
type Config struct {
	// MaxHeadSize bounds the head (start line, headers and blank line).
	// It is also the size of the receive buffer.
	MaxHeadSize int

	// MaxBodySize bounds bodies read by ReadBody, both declared and
	// delimited by connection closure.
	MaxBodySize int64

	// Logger receives malformed and oversize head warnings and per-head
	// debug lines. Logging is disabled when nil.
	Logger *zerolog.Logger

	// Stats is updated by every Reader sharing it. A private instance is
	// used when nil.
	Stats *Stats
}

func (c Config) withDefaults() Config {
	if c.MaxHeadSize <= 0 {
		c.MaxHeadSize = DefaultMaxHeadSize
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.Logger == nil {
		c.Logger = &nopLogger
	}
	if c.Stats == nil {
		c.Stats = NewStats()
	}
	return c
}
