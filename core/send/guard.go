package send

import (
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/sendkit/core/response"
)

// checkHidden rejects targets with a dot-prefixed segment anywhere
// between root and the final filename, inclusive. Segments of root
// itself are never inspected, so a root living under a dotted
// directory works regardless of the hidden setting.
func checkHidden(t resolvedTarget, hidden bool) error {
	if hidden {
		return nil
	}

	rel, err := filepath.Rel(t.root, t.path)
	if err != nil || rel == "." {
		return nil
	}

	for _, segment := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(segment, ".") {
			return response.ErrForbidden
		}
	}
	return nil
}
