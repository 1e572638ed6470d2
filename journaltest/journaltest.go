// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package journaltest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// Polling bounds for Wait, matching the verification cadence the
// daemon's indexing latency has been observed to need.
const (
	// DefaultAttempts is how many times Wait queries before giving up.
	DefaultAttempts = 10

	// DefaultInterval is the pause between attempts.
	DefaultInterval = 100 * time.Millisecond
)

// Available reports whether journalctl is present and runnable. Tests
// that need a live journal skip themselves when it is not.
func Available() bool {
	return exec.Command("journalctl", "--version").Run() == nil
}

// Value is one journal field value. journalctl renders values that are
// valid UTF-8 as JSON strings and everything else as arrays of byte
// numbers; both decode to the raw bytes. A null (journalctl's marker
// for values it declined to inline) decodes to nil.
type Value []byte

// UnmarshalJSON implements json.Unmarshaler for the two journalctl
// value representations.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty journal value")
	}
	switch trimmed[0] {
	case 'n':
		*v = nil
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decoding journal string value: %w", err)
		}
		*v = Value(s)
		return nil
	case '[':
		var numbers []int
		if err := json.Unmarshal(trimmed, &numbers); err != nil {
			return fmt.Errorf("decoding journal byte-array value: %w", err)
		}
		raw := make([]byte, len(numbers))
		for i, n := range numbers {
			if n < 0 || n > 255 {
				return fmt.Errorf("journal byte-array element %d out of range: %d", i, n)
			}
			raw[i] = byte(n)
		}
		*v = raw
		return nil
	default:
		return fmt.Errorf("unsupported journal value representation: %s", trimmed)
	}
}

// Entry is one stored journal entry: field name to raw value,
// including the trusted underscore-prefixed fields the daemon adds.
type Entry map[string]Value

// Read queries the journal for entries from this process carrying the
// given correlation field value. One journalctl invocation; no
// polling.
func Read(field, value string) ([]Entry, error) {
	// --all keeps long and non-printable values inline instead of
	// journalctl replacing them with null.
	command := exec.Command("journalctl",
		"--user",
		"--all",
		"--output=json",
		fmt.Sprintf("_PID=%d", os.Getpid()),
		fmt.Sprintf("%s=%s", field, value),
	)
	var stderr bytes.Buffer
	command.Stderr = &stderr
	output, err := command.Output()
	if err != nil {
		return nil, fmt.Errorf("running journalctl: %w (stderr: %s)", err, bytes.TrimSpace(stderr.Bytes()))
	}

	var entries []Entry
	for _, line := range bytes.Split(output, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("decoding journalctl output line %q: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Wait polls the journal until exactly one entry matches the
// correlation field, or the attempts are exhausted. Exactly one: zero
// means the entry has not been indexed yet, more than one means the
// correlation value was reused and the caller's assertion would be
// meaningless.
func Wait(field, value string, attempts int, interval time.Duration) (Entry, error) {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(interval)
		}
		entries, err := Read(field, value)
		if err != nil {
			lastErr = err
			continue
		}
		if len(entries) == 1 {
			return entries[0], nil
		}
		lastErr = fmt.Errorf("got %d entries for %s=%s, want 1", len(entries), field, value)
	}
	return nil, lastErr
}

// WaitForOne is Wait with the default polling bounds, failing the test
// instead of returning an error.
func WaitForOne(t *testing.T, field, value string) Entry {
	t.Helper()
	entry, err := Wait(field, value, DefaultAttempts, DefaultInterval)
	if err != nil {
		t.Fatalf("journal entry %s=%s never became visible: %v", field, value, err)
	}
	return entry
}
