// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/journald/bridge"
	"github.com/bureau-foundation/journald/journaltest"
	"github.com/bureau-foundation/journald/wire"
)

// correlationName is the raw name of the injected correlation field.
// Its translated form depends on the configured prefix.
const correlationName = "verify.token"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "journal-verify: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		scenarioPath string
		socketPath   string
		prefix       string
		noPrefix     bool
		identifier   string
		attempts     int
		interval     time.Duration
		verbose      bool
	)

	flagSet := pflag.NewFlagSet("journal-verify", pflag.ContinueOnError)
	flagSet.StringVar(&scenarioPath, "scenario", "", "path to the YAML scenario file (required)")
	flagSet.StringVar(&socketPath, "socket", "", "journald socket path (default: the system socket)")
	flagSet.StringVar(&prefix, "prefix", wire.DefaultFieldPrefix, "structured field name prefix")
	flagSet.BoolVar(&noPrefix, "no-prefix", false, "disable the structured field name prefix")
	flagSet.StringVar(&identifier, "identifier", "journal-verify", "SYSLOG_IDENTIFIER value")
	flagSet.IntVar(&attempts, "attempts", journaltest.DefaultAttempts, "journal polling attempts per record")
	flagSet.DurationVar(&interval, "interval", journaltest.DefaultInterval, "pause between polling attempts")
	flagSet.BoolVar(&verbose, "verbose", false, "log each record as it is verified")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if scenarioPath == "" {
		return fmt.Errorf("--scenario is required")
	}
	if noPrefix {
		prefix = ""
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}
	if !journaltest.Available() {
		return fmt.Errorf("journalctl is not available on this machine")
	}

	handler, err := bridge.New(bridge.Options{
		FieldPrefix:      &prefix,
		SocketPath:       socketPath,
		Level:            bridge.LevelTrace,
		SyslogIdentifier: identifier,
	})
	if err != nil {
		return err
	}
	defer handler.Close()

	failures := 0
	for index, record := range scenario.Records {
		token := fmt.Sprintf("verify-%d-%d", os.Getpid(), index)
		logger.Debug("sending record", "index", index, "level", record.Level, "token", token)

		if err := send(handler, record, token); err != nil {
			return fmt.Errorf("record %d: %w", index, err)
		}

		entry, err := journaltest.Wait(wire.TranslateName(correlationName, prefix), token, attempts, interval)
		if err != nil {
			logger.Error("record never became visible", "index", index, "error", err)
			failures++
			continue
		}

		mismatches := compareRecord(record, entry, prefix)
		for _, mismatch := range mismatches {
			logger.Error("stored entry differs", "index", index, "mismatch", mismatch)
		}
		if len(mismatches) > 0 {
			failures++
			continue
		}
		logger.Debug("record verified", "index", index)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d records failed verification", failures, len(scenario.Records))
	}
	logger.Info("all records verified", "count", len(scenario.Records))
	return nil
}

// send forwards one scenario record through the bridge, carrying the
// correlation token as an extra field. The handler is driven directly
// rather than through slog.Logger so send failures surface instead of
// being discarded. Fields are sent in name order so repeated runs
// produce identical payloads.
func send(handler *bridge.Handler, record Record, token string) error {
	names := make([]string, 0, len(record.Fields))
	for name := range record.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	logRecord := slog.NewRecord(time.Now(), recordLevels[record.Level].level, record.Message, 0)
	for _, name := range names {
		logRecord.AddAttrs(slog.String(name, record.Fields[name]))
	}
	logRecord.AddAttrs(slog.String(correlationName, token))

	return handler.Handle(context.Background(), logRecord)
}

// compareRecord checks the stored entry against the scenario record
// and returns a human-readable description of every difference.
func compareRecord(record Record, entry journaltest.Entry, prefix string) []string {
	var mismatches []string

	if got := entry["MESSAGE"]; !bytes.Equal(got, []byte(record.Message)) {
		mismatches = append(mismatches, fmt.Sprintf("MESSAGE: got %q, want %q", got, record.Message))
	}
	wantPriority := recordLevels[record.Level].priority
	if got := entry["PRIORITY"]; string(got) != wantPriority {
		mismatches = append(mismatches, fmt.Sprintf("PRIORITY: got %q, want %q", got, wantPriority))
	}
	for name, wantValue := range record.Fields {
		translated := wire.TranslateName(name, prefix)
		if got := entry[translated]; !bytes.Equal(got, []byte(wantValue)) {
			mismatches = append(mismatches, fmt.Sprintf("%s: got %q, want %q", translated, got, wantValue))
		}
	}
	return mismatches
}
