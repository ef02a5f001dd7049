package internal

import "github.com/starford/billabong/internal/models"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	// buildMode and outputDir override the build section for one run.
	buildMode models.RuntimeMode
	outputDir string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithBuildMode overrides the configured build runtime mode.
func WithBuildMode(m models.RuntimeMode) Option {
	return func(a *application) {
		a.buildMode = m
	}
}

// WithOutputDir overrides the configured build output directory.
func WithOutputDir(dir string) Option {
	return func(a *application) {
		a.outputDir = dir
	}
}

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, errConfigRequired
	}
	return app, nil
}
