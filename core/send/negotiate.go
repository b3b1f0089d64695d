package send

import (
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrymomot/sendkit/core/response"
)

// encoding pairs an Accept-Encoding token with the on-disk sibling
// extension carrying the precompressed variant.
type encoding struct {
	token string
	ext   string
}

// encodings lists compressed representations in preference order.
// Identity is the implicit final fallback. Supporting another scheme
// (e.g. zstd with ".zst" siblings) is one more row here.
var encodings = []encoding{
	{token: "br", ext: ".br"},
	{token: "gzip", ext: ".gz"},
}

// encodingChoice is the representation that will actually be read:
// the concrete path, the Content-Encoding token to emit (empty for
// identity), and the stat of the chosen file.
type encodingChoice struct {
	path     string
	encoding string
	info     fs.FileInfo
}

// negotiate picks the representation to serve for basePath. The first
// encoding in preference order that the client accepts and whose
// sibling file exists wins; otherwise the identity file itself, which
// must exist as a regular file.
func negotiate(basePath, acceptEncoding string) (encodingChoice, error) {
	accepted := acceptedTokens(acceptEncoding)

	for _, enc := range encodings {
		if !accepted[enc.token] {
			continue
		}
		sibling := basePath + enc.ext
		if info, err := os.Stat(sibling); err == nil && info.Mode().IsRegular() {
			return encodingChoice{path: sibling, encoding: enc.token, info: info}, nil
		}
	}

	info, err := os.Stat(basePath)
	if err != nil || !info.Mode().IsRegular() {
		return encodingChoice{}, response.ErrNotFound
	}
	return encodingChoice{path: basePath, info: info}, nil
}

// acceptedTokens parses an Accept-Encoding header value into the set
// of accepted tokens: comma-separated, case-insensitive, quality
// parameters stripped. Identity is not tracked here because it is
// always acceptable.
func acceptedTokens(header string) map[string]bool {
	tokens := make(map[string]bool)
	for _, part := range strings.Split(header, ",") {
		token, _, _ := strings.Cut(part, ";")
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			tokens[token] = true
		}
	}
	return tokens
}
