package static

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/sendkit/core/handler"
	"github.com/dmitrymomot/sendkit/core/response"
	"github.com/dmitrymomot/sendkit/core/send"
)

// dirConfig holds configuration for directory serving.
type dirConfig struct {
	stripPrefix     string
	index           string
	hidden          bool
	cacheControl    string
	mimeTypes       map[string]string
	notFoundHandler func(w http.ResponseWriter, r *http.Request) error
}

// DirOption configures directory serving behavior.
type DirOption func(*dirConfig)

// WithStripPrefix removes the given prefix from the URL path before
// resolving files. Useful when mounting under a route prefix.
func WithStripPrefix(prefix string) DirOption {
	return func(c *dirConfig) {
		c.stripPrefix = prefix
	}
}

// WithIndex sets the file served for directory requests (default "index.html").
// An empty value makes directory requests fail with not found.
func WithIndex(index string) DirOption {
	return func(c *dirConfig) {
		c.index = index
	}
}

// WithHidden allows serving dotfiles and files under dot-directories.
func WithHidden() DirOption {
	return func(c *dirConfig) {
		c.hidden = true
	}
}

// WithCacheControl overrides the Cache-Control header for served files.
func WithCacheControl(value string) DirOption {
	return func(c *dirConfig) {
		c.cacheControl = value
	}
}

// WithMIMETypes adds extension-to-content-type overrides (".ext" keys).
func WithMIMETypes(types map[string]string) DirOption {
	return func(c *dirConfig) {
		c.mimeTypes = types
	}
}

// WithNotFound sets a custom handler invoked when a file is not found.
// Forbidden paths are not routed here; they surface as errors.
func WithNotFound(h func(w http.ResponseWriter, r *http.Request) error) DirOption {
	return func(c *dirConfig) {
		c.notFoundHandler = h
	}
}

// Dir creates a handler that serves files from a directory through the
// send pipeline: no directory listing, hidden files refused by default,
// precompressed siblings negotiated per request.
// Panics at startup if the directory doesn't exist.
func Dir[C handler.Context](root string, opts ...DirOption) handler.HandlerFunc[C] {
	config := &dirConfig{
		index: "index.html",
	}
	for _, opt := range opts {
		opt(config)
	}

	cleanRoot := filepath.Clean(root)
	if err := validateStartup(cleanRoot, true); err != nil {
		panic("static.Dir: " + err.Error())
	}

	options := send.Options{
		Root:         cleanRoot,
		Index:        config.index,
		Hidden:       config.hidden,
		CacheControl: config.cacheControl,
		MIMETypes:    config.mimeTypes,
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			// The raw path goes to the pipeline, which decodes exactly once.
			urlPath := r.URL.EscapedPath()
			if config.stripPrefix != "" {
				urlPath = strings.TrimPrefix(urlPath, config.stripPrefix)
			}

			err := send.Serve(w, r, urlPath, options)
			if config.notFoundHandler != nil && errors.Is(err, response.ErrNotFound) {
				return config.notFoundHandler(w, r)
			}
			return err
		}
	}
}
