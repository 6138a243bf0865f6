// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{
			name:    "port zero",
			modify:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "port too large",
			modify:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "zero read timeout",
			modify:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "HTTP_READ_TIMEOUT",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
		{
			name:    "zero rate limit",
			modify:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit ignored when disabled",
			modify: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{
			name:    "zero default limit",
			modify:  func(c *Config) { c.Recommend.DefaultLimit = 0 },
			wantErr: "RECOMMEND_DEFAULT_LIMIT",
		},
		{
			name:    "max limit below default",
			modify:  func(c *Config) { c.Recommend.MaxLimit = 5 },
			wantErr: "RECOMMEND_MAX_LIMIT",
		},
		{
			name:    "zero train batch",
			modify:  func(c *Config) { c.Recommend.MaxTrainBatch = 0 },
			wantErr: "RECOMMEND_MAX_TRAIN_BATCH",
		},
		{
			name:    "negative cache size",
			modify:  func(c *Config) { c.Recommend.CacheSize = -1 },
			wantErr: "RECOMMEND_CACHE_SIZE",
		},
		{
			name:    "cache without ttl",
			modify:  func(c *Config) { c.Recommend.CacheTTL = 0 },
			wantErr: "RECOMMEND_CACHE_TTL",
		},
		{
			name: "cache disabled ignores ttl",
			modify: func(c *Config) {
				c.Recommend.CacheSize = 0
				c.Recommend.CacheTTL = 0
			},
		},
		{
			name:    "reload without path",
			modify:  func(c *Config) { c.Catalog.ReloadInterval = time.Minute },
			wantErr: "CATALOG_BOOTSTRAP_PATH",
		},
		{
			name:    "negative supervisor backoff",
			modify:  func(c *Config) { c.Supervisor.FailureBackoff = -time.Second },
			wantErr: "supervisor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
