package config

import "log/slog"

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// BuildLogger is exported for testing
func BuildLogger(l *Logger) (*slog.Logger, func(), error) {
	return l.build()
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, sqlitePath string) *Repository {
	return &Repository{
		backend:    backend,
		sqlitePath: sqlitePath,
	}
}

// NewCatalogForTest creates a Catalog config for testing purposes
func NewCatalogForTest(source, path, url string) *Catalog {
	return &Catalog{
		source: source,
		path:   path,
		url:    url,
	}
}

// NewProvidersForTest creates a Providers config for testing purposes
func NewProvidersForTest(openaiAPIKey, geminiAPIKey, ollamaModel string) *Providers {
	return &Providers{
		openaiAPIKey: openaiAPIKey,
		geminiAPIKey: geminiAPIKey,
		ollamaModel:  ollamaModel,
	}
}

// NewEnvironmentForTest creates an Environment config for testing purposes
func NewEnvironmentForTest(env string) *Environment {
	return &Environment{env: env}
}
