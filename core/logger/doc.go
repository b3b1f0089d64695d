// Package logger provides slog attribute helpers used across sendkit
// binaries. Helpers return an empty Attr for nil inputs, so they can
// be passed unconditionally:
//
//	log.Info("request served",
//		logger.Status(status),
//		logger.Duration(elapsed),
//		logger.Error(err),
//	)
package logger
