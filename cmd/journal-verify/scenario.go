// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/journald/bridge"
)

// Scenario is the YAML document describing the records to send and
// verify.
type Scenario struct {
	Records []Record `yaml:"records"`
}

// Record is one log record in a scenario.
type Record struct {
	// Level is one of: error, warn, info, debug, trace.
	Level string `yaml:"level"`

	// Message is the record body, stored byte-for-byte (embedded
	// newlines and NUL escapes included).
	Message string `yaml:"message"`

	// Fields are structured fields, raw (untranslated) name to value.
	Fields map[string]string `yaml:"fields"`
}

// recordLevels maps scenario level names to slog levels, and doubles
// as the expected PRIORITY digit for verification.
var recordLevels = map[string]struct {
	level    slog.Level
	priority string
}{
	"error": {slog.LevelError, "3"},
	"warn":  {slog.LevelWarn, "4"},
	"info":  {slog.LevelInfo, "5"},
	"debug": {slog.LevelDebug, "6"},
	"trace": {bridge.LevelTrace, "7"},
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if len(scenario.Records) == 0 {
		return nil, fmt.Errorf("scenario %s contains no records", path)
	}
	for i, record := range scenario.Records {
		if _, known := recordLevels[record.Level]; !known {
			return nil, fmt.Errorf("scenario %s record %d: unknown level %q", path, i, record.Level)
		}
	}
	return &scenario, nil
}
