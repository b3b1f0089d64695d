// Package static provides HTTP handlers for serving static files on
// top of the send pipeline. Every handler gets the pipeline's
// guarantees for free: traversal-safe path resolution, hidden files
// refused unless opted in, no directory listing, and automatic
// negotiation of precompressed .br/.gz siblings.
//
// All functions return handler.HandlerFunc[C] for use with a
// framework router:
//
//	// Serve a single file
//	r.Get("/favicon.ico", static.File[*appContext]("./static/favicon.ico"))
//
//	// Serve files from a directory
//	r.Get("/assets/*", static.Dir[*appContext](
//		"./public/assets",
//		static.WithStripPrefix("/assets"),
//		static.WithCacheControl("public, max-age=31536000, immutable"),
//	))
//
//	// Serve an SPA with client-side routing
//	r.Get("/*", static.SPA[*appContext](
//		"./dist",
//		static.WithSPAExcludePaths("/api", "/ws"),
//	))
//
// Handlers panic at startup when their root or file doesn't exist, so
// misconfiguration fails at boot rather than per request. Per-request
// failures are returned as response errors carrying their HTTP status;
// the hosting framework renders them.
package static
