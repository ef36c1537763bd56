// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (clients, session storage) via
    constructors.
  - Zero Hidden State: No global variables are used to store config.

This keeps the client Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the GlassStream client.
type Config struct {

	// Movie-catalog service (read-only, bearer-token authenticated)
	CatalogBaseURL string `env:"CATALOG_BASE_URL" envDefault:"https://api.themoviedb.org/3"`
	CatalogToken   string `env:"CATALOG_READ_TOKEN,required"`

	// Static image asset host. Size tiers are appended as path segments.
	ImageBaseURL string `env:"IMAGE_BASE_URL" envDefault:"https://image.tmdb.org/t/p"`

	// User/comments service
	AccountBaseURL string `env:"ACCOUNT_BASE_URL,required"`

	// Persisted session state. StateFile is the default backend; RedisURL,
	// when set, selects the Redis backend instead.
	StateFile string `env:"STATE_FILE" envDefault:"glassstream_state.json"`
	RedisURL  string `env:"REDIS_URL"`

	// HTTPTimeout is the single transport deadline for every remote call.
	// There is no retry policy: each call is attempted at most once.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// CatalogRateLimit caps outbound catalog requests per second.
	CatalogRateLimit float64 `env:"CATALOG_RATE_LIMIT" envDefault:"40"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}
