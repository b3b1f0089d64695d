package send

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/sendkit/core/response"
)

// resolvedTarget is the outcome of path resolution: an absolute
// filesystem path guaranteed to sit inside the normalized root.
// Construction fails instead of producing an escaping path.
type resolvedTarget struct {
	path string
	root string
}

// resolve turns a raw URL path and a configured root into an absolute
// candidate path. The request path is URL-decoded exactly once, joined
// lexically onto the absolute root (`.`/`..` collapse before any
// check), and the collapsed result must still sit inside root
// component-wise. A `..` that escapes and lexically re-enters root is
// allowed: only the final collapsed path is judged.
func resolve(root, requestPath, index string) (resolvedTarget, error) {
	decoded, err := url.PathUnescape(requestPath)
	if err != nil {
		// Malformed percent-encoding addresses nothing on disk.
		return resolvedTarget{}, response.ErrNotFound
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return resolvedTarget{}, response.ErrNotFound
	}

	target := filepath.Join(absRoot, filepath.FromSlash(decoded))
	if !within(absRoot, target) {
		return resolvedTarget{}, response.ErrForbidden
	}

	// Directory requests resolve to the configured index file, which
	// must itself stay inside root.
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		if index == "" {
			return resolvedTarget{}, response.ErrNotFound
		}
		target = filepath.Join(target, index)
		if !within(absRoot, target) {
			return resolvedTarget{}, response.ErrForbidden
		}
	}

	return resolvedTarget{path: target, root: absRoot}, nil
}

// within reports whether target sits inside root, judged component-wise
// so that /root-evil never matches /root.
func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
