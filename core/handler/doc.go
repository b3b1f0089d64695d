// Package handler defines the request handling contracts shared across
// sendkit: the Response rendering function, the generic HandlerFunc, and
// the Context interface handlers receive.
//
// A Response writes the success path and returns errors instead of
// rendering them, so the framework hosting the handler decides how
// failures are presented:
//
//	func Asset(path string) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			return send.Serve(w, r, path, send.Options{Root: "./public"})
//		}
//	}
package handler
