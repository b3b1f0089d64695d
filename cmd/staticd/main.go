// Command staticd serves a directory of static assets over HTTP using
// the send pipeline: traversal-safe resolution, hidden files refused by
// default, precompressed .br/.gz siblings negotiated per request.
// Configuration comes from STATICD_* environment variables (see Config).
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/sendkit/core/config"
	"github.com/dmitrymomot/sendkit/core/logger"
	"github.com/dmitrymomot/sendkit/core/response"
	"github.com/dmitrymomot/sendkit/core/send"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		log.Error("root directory is not accessible", slog.String("root", cfg.Root), logger.Error(err))
		os.Exit(1)
	}

	opts := send.Options{
		Root:         cfg.Root,
		Index:        cfg.Index,
		Hidden:       cfg.Hidden,
		CacheControl: cfg.CacheControl,
	}

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/*", serveAssets(log, opts))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting staticd", slog.String("addr", cfg.Addr), slog.String("root", cfg.Root))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info("shutting down gracefully", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
	}
}

// serveAssets handles every asset request: run the send pipeline, map
// its errors to status codes, and record logging and metrics for the
// outcome.
func serveAssets(log *slog.Logger, opts send.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := newStatusWriter(w)

		err := send.Serve(ww, r, r.URL.EscapedPath(), opts)
		if err != nil && !ww.written {
			// Pipeline failures leave the response untouched; copy
			// errors after headers are committed cannot be remapped.
			status := http.StatusInternalServerError
			var httpErr response.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.StatusCode()
			}
			http.Error(ww, http.StatusText(status), status)
		}

		requestsTotal.WithLabelValues(strconv.Itoa(ww.Status())).Inc()
		bytesServed.Add(float64(ww.Bytes()))

		log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Status(ww.Status()),
			logger.Bytes(ww.Bytes()),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
	}
}
