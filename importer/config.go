// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package importer

import (
	"fmt"
	"time"
)

const (
	// DefaultBatchSize is the default number of records stored per write.
	DefaultBatchSize = 100

	// DefaultReportInterval is the default number of records between progress lines.
	DefaultReportInterval = 100

	// DefaultMaxRetries is the default number of attempts per batch.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default delay before the first retry.
	DefaultRetryDelay = 200 * time.Millisecond
)

// Config controls how records are written during an import.
type Config struct {
	BatchSize      int
	ReportInterval int
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default import settings.
func DefaultConfig() Config {
	return Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: DefaultReportInterval,
		MaxRetries:     DefaultMaxRetries,
		RetryDelay:     DefaultRetryDelay,
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be greater than 0", ErrInvalidConfig)
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("%w: report interval must be greater than 0", ErrInvalidConfig)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidMaxAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidConfig)
	}
	return nil
}
