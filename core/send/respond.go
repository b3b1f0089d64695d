package send

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dmitrymomot/sendkit/core/response"
)

// fileMetadata describes the variant that will be served. Size and
// modification time come from the chosen file's stat; the extension is
// the logical resource's, so a .gz sibling still reports the base type.
type fileMetadata struct {
	size    int64
	modTime time.Time
	ext     string
}

// respond writes headers for the chosen variant and streams its bytes.
// No header is touched before the file is open, so a late open failure
// leaves the response untouched for the framework's error handler. The
// handle closes on every exit path, including a client disconnect
// mid-copy.
func respond(w http.ResponseWriter, choice encodingChoice, meta fileMetadata, opts Options) error {
	f, err := os.Open(choice.path)
	if err != nil {
		return response.ErrNotFound
	}
	defer f.Close()

	h := w.Header()
	h.Set("Content-Type", contentType(meta.ext, opts.MIMETypes))
	h.Set("Content-Length", strconv.FormatInt(meta.size, 10))
	h.Set("Last-Modified", meta.modTime.UTC().Format(http.TimeFormat))
	h.Set("Cache-Control", opts.cacheControl())
	if choice.encoding != "" {
		h.Set("Content-Encoding", choice.encoding)
	}

	w.WriteHeader(http.StatusOK)

	// Headers are committed; a copy error here means the client went
	// away or the write failed, and only the caller can log it.
	_, err = io.Copy(w, f)
	return err
}
