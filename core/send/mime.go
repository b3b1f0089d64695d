package send

import (
	"mime"
	"strings"
)

// defaultMIMEType is emitted for extensions no table resolves.
const defaultMIMEType = "application/octet-stream"

// mimeTypes maps lowercase extensions to content types for the asset
// kinds a static sender commonly serves. Kept as data so extending it
// is a table edit; Options.MIMETypes overrides it per call, and the
// platform mime database is consulted as a last resort.
var mimeTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".mjs":   "text/javascript; charset=utf-8",
	".json":  "application/json",
	".xml":   "text/xml; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".md":    "text/markdown; charset=utf-8",
	".csv":   "text/csv; charset=utf-8",
	".pdf":   "application/pdf",
	".wasm":  "application/wasm",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".avif":  "image/avif",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".mp3":   "audio/mpeg",
	".ogg":   "audio/ogg",
	".wav":   "audio/wav",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".map":   "application/json",
}

// contentType resolves the content type for the logical resource
// extension, which is always the base file's extension, never that of
// a compressed sibling.
func contentType(ext string, overrides map[string]string) string {
	ext = strings.ToLower(ext)
	if t, ok := overrides[ext]; ok {
		return t
	}
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return defaultMIMEType
}
