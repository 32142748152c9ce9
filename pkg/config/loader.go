package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// configCache keeps one parsed value per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	globalCache = &configCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its env struct tags.
//
// The first call in a process also reads ./.env when it exists. Each
// configuration type is parsed once; later calls for the same type copy the
// cached value. Failed parses are not cached.
//
//	type Config struct {
//		Schema    string `env:"SEQSCAN_SCHEMA,required"`
//		MaxIssues int    `env:"SEQSCAN_MAX_ISSUES" envDefault:"100"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing default file is fine
		_ = LoadEnv()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if key.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, key)
	}

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	if cached, ok := globalCache.values[key]; ok {
		parsed = cached.(T)
	} else {
		globalCache.values[key] = parsed
	}
	globalCache.mu.Unlock()

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload drops any cached value for T and parses the environment again.
func Reload[T any](v *T) error {
	globalCache.mu.Lock()
	delete(globalCache.values, typeKey[T]())
	globalCache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
}

// LoadEnv reads dotenv files into the process environment.
//
// With no arguments ./.env is read if present and a missing file is not an
// error. Named files must exist. When several files set the same key the
// later file wins, and variables already set in the process environment are
// never overwritten.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		paths = []string{defaultEnvFile}
	}

	merged := make(map[string]string)
	for _, p := range paths {
		values, err := godotenv.Read(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, p, err)
		}
		for k, val := range values {
			merged[k] = val
		}
	}

	for k, val := range merged {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, k, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
