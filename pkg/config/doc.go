// Package config loads environment-based configuration into tagged structs.
//
// Load reads a .env file once per process (a missing file is not an error)
// and then parses the environment with github.com/caarlos0/env. Each config
// type is parsed once and cached; later calls for the same type return the
// cached copy.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
