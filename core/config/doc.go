// Package config provides environment variable loading for sendkit
// binaries. It parses env-tagged structs with caarlos0/env and loads a
// .env file once per process on first use.
//
//	type ServerConfig struct {
//		Addr string `env:"STATICD_ADDR" envDefault:":8080"`
//		Root string `env:"STATICD_ROOT,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
