package queue

import (
	"math/rand"
	"time"
)

// Config carries the configuration for queues.
type Config struct {
	// Allocator accounts for the memory held by the queue. When nil, the
	// DefaultAllocator is used.
	Allocator Allocator

	// Rand is the source of randomness used by Shuffle. When nil, a source
	// seeded from the current time is created the first time the queue is
	// shuffled.
	Rand *rand.Rand
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Allocator: DefaultAllocator,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Queue instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// WithAllocator is a queue configuration option setting the allocator that the
// queue charges its memory to.
//
// Default: DefaultAllocator
func WithAllocator(alloc Allocator) Option {
	return option(func(config *Config) { config.Allocator = alloc })
}

// RandSource is a queue configuration option setting the source of randomness
// used to shuffle the queue.
func RandSource(src rand.Source) Option {
	return option(func(config *Config) { config.Rand = rand.New(src) })
}

// Seed is a queue configuration option making shuffles deterministic, the
// queue draws random numbers from a source initialized with seed.
func Seed(seed int64) Option {
	return RandSource(rand.NewSource(seed))
}

func newTimeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
