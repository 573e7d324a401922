package app

import "github.com/thenoetrevino/tramo/internal/config"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config         *config.Config
	libraryPath    string
	withoutLibrary bool
}

// WithConfig uses cfg instead of loading the user's config file
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithLibraryPath opens the project library at path
func WithLibraryPath(path string) Option {
	return func(c *appConfig) {
		c.libraryPath = path
	}
}

// WithoutLibrary skips opening the project library
func WithoutLibrary() Option {
	return func(c *appConfig) {
		c.withoutLibrary = true
	}
}
