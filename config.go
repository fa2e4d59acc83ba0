package shelf

import (
	"log/slog"

	"github.com/TheBitDrifter/bark"
)

// Config holds global configuration for the storage
var Config config = config{
	sequenceCapacity: 1,
	bucketCapacity:   4,
}

type config struct {
	logger           *slog.Logger
	sequenceCapacity int
	bucketCapacity   int
}

// SetLogger overrides the package logger; nil restores the bark default
func (c *config) SetLogger(l *slog.Logger) {
	c.logger = l
}

// Logger returns the package logger, tagged with the shelf component
func (c *config) Logger() *slog.Logger {
	if c.logger == nil {
		c.logger = bark.For("shelf")
	}
	return c.logger
}

// SetSequenceCapacity sets the initial capacity of new per-entity sequences
func (c *config) SetSequenceCapacity(n int) {
	c.sequenceCapacity = max(n, 1)
}

// SetBucketCapacity sets the outer capacity of storages built by the Factory
func (c *config) SetBucketCapacity(n int) {
	c.bucketCapacity = max(n, 0)
}
