// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

// Package config loads Tracksim configuration.
//
// Configuration is layered with Koanf v2, lowest priority first:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: CONFIG_PATH, ./config.yaml, or /etc/tracksim/config.yaml
//  3. Environment variables, mapped explicitly by envTransformFunc
//
// Example config.yaml:
//
//	server:
//	  port: 3870
//	logging:
//	  level: debug
//	  format: console
//	recommend:
//	  default_limit: 20
//	catalog:
//	  bootstrap_path: /data/tracks.json
//	  reload_interval: 10m
package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in every entry.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds recommendation engine and API limits.
type RecommendConfig struct {
	// DefaultLimit is used when a recommendation request omits the limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit is the largest limit a request may ask for.
	MaxLimit int `koanf:"max_limit"`

	// MaxTrainBatch is the largest number of tracks accepted per train request.
	MaxTrainBatch int `koanf:"max_train_batch"`

	// RejectEmptyTraining makes empty training batches an error.
	RejectEmptyTraining bool `koanf:"reject_empty_training"`

	// MaxReportedRejections caps the malformed-track details returned per batch.
	MaxReportedRejections int `koanf:"max_reported_rejections"`

	// CacheSize is the number of recommendation results kept in memory.
	// Zero disables result caching.
	CacheSize int `koanf:"cache_size"`

	// CacheTTL bounds how long a cached result is served.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// CatalogConfig controls loading the catalog from disk.
type CatalogConfig struct {
	// BootstrapPath is a JSON file of raw tracks. Empty disables file loading.
	BootstrapPath string `koanf:"bootstrap_path"`

	// ReloadInterval re-reads BootstrapPath periodically. Zero loads once.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// TrainOnStartup loads BootstrapPath as soon as the service starts.
	TrainOnStartup bool `koanf:"train_on_startup"`
}

// SupervisorConfig holds suture failure handling parameters.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
