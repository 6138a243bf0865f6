// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
// Similarity weights are fixed constants and deliberately not configurable.
type Config struct {
	// Training contains training parameters.
	Training TrainingConfig `json:"training"`

	// Limits contains query limits applied by callers.
	Limits LimitsConfig `json:"limits"`
}

// TrainingConfig contains training parameters.
type TrainingConfig struct {
	// RejectEmpty makes Train fail with ErrEmptyInput on an empty batch.
	// Default: false (an empty batch is accepted and changes nothing but
	// the model version).
	RejectEmpty bool `json:"reject_empty"`

	// MaxReportedRejections caps TrainingSummary.Rejected.
	// Default: 20.
	MaxReportedRejections int `json:"max_reported_rejections"`

	// MaxBatchSize is the largest batch accepted from the HTTP API.
	// Default: 10000.
	MaxBatchSize int `json:"max_batch_size"`
}

// LimitsConfig contains recommendation query limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request omits the limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit is the largest limit accepted from the HTTP API.
	// Default: 100.
	MaxLimit int `json:"max_limit"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Training: TrainingConfig{
			RejectEmpty:           false,
			MaxReportedRejections: 20,
			MaxBatchSize:          10000,
		},
		Limits: LimitsConfig{
			DefaultLimit: DefaultLimit,
			MaxLimit:     100,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Training.MaxReportedRejections < 0 {
		return fmt.Errorf("training.max_reported_rejections must be non-negative, got %d", c.Training.MaxReportedRejections)
	}
	if c.Training.MaxBatchSize <= 0 {
		return fmt.Errorf("training.max_batch_size must be positive, got %d", c.Training.MaxBatchSize)
	}
	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
