package main

import "time"

// Config holds staticd configuration with environment variable support.
type Config struct {
	// Listen address
	Addr string `env:"STATICD_ADDR" envDefault:":8080"`

	// Asset serving
	Root         string `env:"STATICD_ROOT" envDefault:"./public"`
	Index        string `env:"STATICD_INDEX" envDefault:"index.html"`
	Hidden       bool   `env:"STATICD_HIDDEN" envDefault:"false"`
	CacheControl string `env:"STATICD_CACHE_CONTROL" envDefault:""`

	// Timeouts
	ReadTimeout     time.Duration `env:"STATICD_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"STATICD_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"STATICD_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"STATICD_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
