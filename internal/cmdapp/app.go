// Package cmdapp provides the application context and dependency wiring
// for the solda CLI. Configuration, logging and lazily loaded catalog data
// live here so that commands stay thin.
package cmdapp

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/catalogs"
)

// App represents the solda application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalog data (lazy-initialized, singleton)
	mu      sync.RWMutex
	catalog catalogs.Reader
	aliases map[string]string
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Catalog returns the package catalog, loading it lazily from the
// configured path. Thread-safe; the catalog is loaded at most once.
func (a *App) Catalog() (catalogs.Reader, error) {
	a.mu.RLock()
	if a.catalog != nil {
		c := a.catalog
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	catalog, err := catalogs.Load(a.config.CatalogPath)
	if err != nil {
		return nil, err
	}
	a.catalog = catalog
	return catalog, nil
}

// Aliases returns the name alias table, loading it lazily from the
// configured path. A missing configuration yields an empty table.
func (a *App) Aliases() (map[string]string, error) {
	a.mu.RLock()
	if a.aliases != nil {
		aliases := a.aliases
		a.mu.RUnlock()
		return aliases, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.aliases != nil {
		return a.aliases, nil
	}

	if a.config.AliasesPath == "" {
		a.aliases = map[string]string{}
		return a.aliases, nil
	}

	aliases, err := catalogs.LoadAliases(a.config.AliasesPath)
	if err != nil {
		return nil, err
	}
	a.aliases = aliases
	return aliases, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a preloaded catalog (useful for testing).
func WithCatalog(catalog catalogs.Reader) Option {
	return func(a *App) error {
		a.catalog = catalog
		return nil
	}
}

// WithAliases sets a preloaded alias table (useful for testing).
func WithAliases(aliases map[string]string) Option {
	return func(a *App) error {
		a.aliases = aliases
		return nil
	}
}
