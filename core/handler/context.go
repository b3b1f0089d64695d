package handler

import (
	"context"
	"net/http"
)

// Context is the contract handlers receive for each request.
// It carries the request and the writer the rendered Response targets.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}
