// Package response provides the error model shared by sendkit's
// serving pipeline. Errors carry their HTTP status via StatusCode(),
// so the surrounding framework maps them to transport responses while
// the pipeline itself never writes an error body.
package response
