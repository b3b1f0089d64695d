package static

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/sendkit/core/handler"
	"github.com/dmitrymomot/sendkit/core/response"
	"github.com/dmitrymomot/sendkit/core/send"
)

// spaConfig holds configuration for Single Page Application serving.
type spaConfig struct {
	indexFile    string
	excludePaths []string
	cacheControl string
}

// SPAOption configures SPA serving behavior.
type SPAOption func(*spaConfig)

// WithSPAIndex sets the fallback index file (default "index.html").
func WithSPAIndex(indexFile string) SPAOption {
	return func(c *spaConfig) {
		c.indexFile = indexFile
	}
}

// WithSPAExcludePaths sets path prefixes excluded from SPA handling.
// Requests under them return not found instead of the index fallback.
// Defaults are "/api" and "/ws".
func WithSPAExcludePaths(paths ...string) SPAOption {
	return func(c *spaConfig) {
		c.excludePaths = paths
	}
}

// WithSPACacheControl overrides the Cache-Control header for served files.
func WithSPACacheControl(value string) SPAOption {
	return func(c *spaConfig) {
		c.cacheControl = value
	}
}

// SPA creates a handler for Single Page Applications with client-side
// routing: existing files are served through the send pipeline
// (including precompressed variants), and every other route falls back
// to the index file so the client router can take over.
// Panics at startup if the root or the index file doesn't exist.
func SPA[C handler.Context](root string, opts ...SPAOption) handler.HandlerFunc[C] {
	config := &spaConfig{
		indexFile:    "index.html",
		excludePaths: []string{"/api", "/ws"},
	}
	for _, opt := range opts {
		opt(config)
	}

	cleanRoot := filepath.Clean(root)
	if err := validateStartup(cleanRoot, true); err != nil {
		panic("static.SPA: " + err.Error())
	}
	if err := validateStartup(filepath.Join(cleanRoot, config.indexFile), false); err != nil {
		panic("static.SPA: " + err.Error())
	}

	options := send.Options{
		Root:         cleanRoot,
		Index:        config.indexFile,
		CacheControl: config.cacheControl,
	}
	indexPath := "/" + config.indexFile

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			cleanPath := path.Clean(r.URL.Path)
			for _, exclude := range config.excludePaths {
				if cleanPath == exclude || strings.HasPrefix(cleanPath, exclude+"/") {
					return response.ErrNotFound
				}
			}

			// The index fallback covers client-side routes as well as
			// traversal and dotfile rejections: nothing was written
			// yet, so the response is still clean.
			if err := send.Serve(w, r, r.URL.EscapedPath(), options); err != nil {
				return send.Serve(w, r, indexPath, options)
			}
			return nil
		}
	}
}
