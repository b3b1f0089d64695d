package send

import "errors"

// ErrMissingRoot is returned by Serve when no root directory is configured.
var ErrMissingRoot = errors.New("send: root directory is required")

// DefaultCacheControl is emitted when Options.CacheControl is empty.
// It forces revalidation on every request, the safe default for assets
// whose names are not content-hashed.
const DefaultCacheControl = "max-age=0"

// Options configures a single send. The zero value is not usable:
// Root is required. Options is treated as an immutable value per call.
type Options struct {
	// Root is the base directory outside which no file is ever served.
	// It may be relative; it is normalized to an absolute path before
	// any request path is joined onto it. `..` inside Root itself is
	// trusted operator configuration.
	Root string

	// Index is substituted when the resolved path denotes a directory.
	// Empty means directory requests fail with not found.
	Index string

	// Hidden allows serving dotfiles and files under dot-directories.
	// Only segments below Root are inspected; a dotted Root is fine
	// either way.
	Hidden bool

	// CacheControl overrides the Cache-Control header value.
	// Empty means DefaultCacheControl.
	CacheControl string

	// MIMETypes maps lowercase extensions (".ext") to content types,
	// consulted before the built-in table.
	MIMETypes map[string]string
}

func (o Options) cacheControl() string {
	if o.CacheControl == "" {
		return DefaultCacheControl
	}
	return o.CacheControl
}
