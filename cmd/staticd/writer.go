package main

import "net/http"

// statusWriter wraps http.ResponseWriter to record the status code and
// the number of body bytes written, for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status  int
	bytes   int64
	written bool
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Status returns the recorded HTTP status code, defaulting to 200 when
// nothing was written explicitly.
func (w *statusWriter) Status() int {
	if !w.written {
		return http.StatusOK
	}
	return w.status
}

// Bytes returns the number of body bytes written so far.
func (w *statusWriter) Bytes() int64 {
	return w.bytes
}
