package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix      string
	envFiles    []string
	environment map[string]string
	noCache     bool
}

// WithPrefix only reads variables starting with prefix, e.g. "FORMGUARD_".
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env file, these must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// WithEnvironment parses from m instead of the process environment.
// Results are not cached.
func WithEnvironment(m map[string]string) Option {
	return func(o *loadOptions) {
		o.environment = m
		o.noCache = true
	}
}

// WithoutCache forces a fresh parse.
func WithoutCache() Option {
	return func(o *loadOptions) { o.noCache = true }
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load fills v from environment variables according to its `env` struct tags.
// The optional .env file in the working directory is loaded once per process.
// Parsed values are cached per type and prefix, so repeated calls return the
// same configuration.
//
//	type Options struct {
//		PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
//	}
//
//	var opts Options
//	err := config.Load(&opts, config.WithPrefix("FORMGUARD_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := cacheKey[T](o.prefix)
	if !o.noCache {
		cacheMu.RLock()
		cached, ok := cache[key]
		cacheMu.RUnlock()
		if ok {
			*v = cached.(T)
			return nil
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if !o.noCache {
		cacheMu.Lock()
		cache[key] = *v
		cacheMu.Unlock()
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
