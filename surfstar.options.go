package surfstar

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	loader SourceLoader
	cache  *CacheConfig
	logger *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		loader: NewFileLoader(""),
		cache:  nil,
		logger: nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithLoader sets the collaborator that resolves template paths for
// ParseFile and ExecuteFile. A nil loader disables file access.
// Default: a FileLoader reading paths as given
func WithLoader(loader SourceLoader) Option {
	return func(c *engineConfig) {
		c.loader = loader
	}
}

// WithCache wraps the configured loader in a CachedLoader.
// Default: no caching
func WithCache(config CacheConfig) Option {
	return func(c *engineConfig) {
		c.cache = &config
	}
}
