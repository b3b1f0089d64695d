package send

import (
	"net/http"
	"path/filepath"
)

// Serve resolves requestPath against opts.Root and streams the best
// on-disk representation to w: resolve, hidden-segment guard, encoding
// negotiation against the request's Accept-Encoding header, then the
// response itself. Stages run strictly in that order and the first
// failure is terminal.
//
// Failures surface as response.ErrNotFound or response.ErrForbidden
// without writing anything to w; mapping them to a transport response
// is the caller's job.
func Serve(w http.ResponseWriter, r *http.Request, requestPath string, opts Options) error {
	if opts.Root == "" {
		return ErrMissingRoot
	}

	target, err := resolve(opts.Root, requestPath, opts.Index)
	if err != nil {
		return err
	}

	if err := checkHidden(target, opts.Hidden); err != nil {
		return err
	}

	choice, err := negotiate(target.path, r.Header.Get("Accept-Encoding"))
	if err != nil {
		return err
	}

	meta := fileMetadata{
		size:    choice.info.Size(),
		modTime: choice.info.ModTime(),
		ext:     filepath.Ext(target.path),
	}
	return respond(w, choice, meta, opts)
}
