// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env, with optional .env files read through
// github.com/joho/godotenv.
//
// Configuration structs declare their variables with `env` and `envDefault`
// tags. Load parses once per type and prefix and caches the result:
//
//	type ServerConfig struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		FormsDir  string `env:"FORMS_DIR,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Tests can bypass the process environment with WithEnvironment.
package config
