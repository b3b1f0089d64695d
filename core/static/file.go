package static

import (
	"net/http"
	"path/filepath"

	"github.com/dmitrymomot/sendkit/core/handler"
	"github.com/dmitrymomot/sendkit/core/send"
)

// fileConfig holds configuration for single-file serving.
type fileConfig struct {
	cacheControl string
}

// FileOption configures single-file serving behavior.
type FileOption func(*fileConfig)

// WithFileCacheControl overrides the Cache-Control header for the file.
func WithFileCacheControl(value string) FileOption {
	return func(c *fileConfig) {
		c.cacheControl = value
	}
}

// File creates a handler that serves a single static file, with
// precompressed .br/.gz siblings picked up automatically.
// Panics at startup if the file doesn't exist or is a directory.
//
// The path is operator-chosen, not client input, so dotfiles are
// allowed here; the hidden-segment policy applies to Dir and SPA.
func File[C handler.Context](filePath string, opts ...FileOption) handler.HandlerFunc[C] {
	config := &fileConfig{}
	for _, opt := range opts {
		opt(config)
	}

	cleanPath := filepath.Clean(filePath)
	if err := validateStartup(cleanPath, false); err != nil {
		panic("static.File: " + err.Error())
	}

	options := send.Options{
		Root:         filepath.Dir(cleanPath),
		Hidden:       true,
		CacheControl: config.cacheControl,
	}
	name := "/" + filepath.Base(cleanPath)

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return send.Serve(w, r, name, options)
		}
	}
}
