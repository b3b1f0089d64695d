// Package send implements a secure, content-negotiating static-asset
// sender: it resolves a URL path against a root directory, refuses
// traversal and hidden files, picks a precompressed .br/.gz sibling
// when the client accepts it, and streams the chosen file with
// accurate Content-Type, Content-Length, Content-Encoding,
// Last-Modified and Cache-Control headers.
//
// # Usage
//
//	err := send.Serve(w, r, r.URL.Path, send.Options{
//		Root:  "./public",
//		Index: "index.html",
//	})
//
// Serve never writes an error response. On failure it returns
// response.ErrNotFound or response.ErrForbidden with the response
// untouched, so the surrounding framework decides how to present the
// failure.
//
// # Security
//
// The request path is URL-decoded exactly once and joined lexically
// onto the absolute root; `.`/`..` segments collapse before the
// containment check, which compares path components rather than string
// prefixes. A collapsed path outside root is forbidden. Dotfiles and
// files under dot-directories below root are forbidden unless
// Options.Hidden is set; the root's own location is always trusted.
//
// # Content negotiation
//
// For a resolved file, siblings with .br and .gz suffixes are
// preferred in that order when the Accept-Encoding header names the
// encoding and the sibling exists. Content-Type always derives from
// the base filename's extension; Content-Length is the size of the
// variant actually sent.
package send
