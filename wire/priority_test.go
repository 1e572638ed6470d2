// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"log/slog"
	"testing"
)

func TestPriorityFromLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		level slog.Level
		want  Priority
	}{
		{name: "error", level: slog.LevelError, want: 3},
		{name: "warn", level: slog.LevelWarn, want: 4},
		{name: "info", level: slog.LevelInfo, want: 5},
		{name: "debug", level: slog.LevelDebug, want: 6},
		{name: "trace", level: slog.LevelDebug - 4, want: 7},
		{name: "above error", level: slog.LevelError + 8, want: 3},
		{name: "between warn and error", level: slog.LevelWarn + 2, want: 4},
		{name: "between info and warn", level: slog.LevelInfo + 2, want: 5},
		{name: "between debug and info", level: slog.LevelDebug + 2, want: 6},
		{name: "far below trace", level: slog.LevelDebug - 100, want: 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := PriorityFromLevel(test.level); got != test.want {
				t.Errorf("PriorityFromLevel(%v): got %d, want %d", test.level, got, test.want)
			}
		})
	}
}

// TestPriorityOrderingInverse verifies that more urgent levels map to
// strictly smaller priority numbers.
func TestPriorityOrderingInverse(t *testing.T) {
	t.Parallel()
	descending := []slog.Level{
		slog.LevelError,
		slog.LevelWarn,
		slog.LevelInfo,
		slog.LevelDebug,
		slog.LevelDebug - 4,
	}
	for i := 1; i < len(descending); i++ {
		moreUrgent := PriorityFromLevel(descending[i-1])
		lessUrgent := PriorityFromLevel(descending[i])
		if moreUrgent >= lessUrgent {
			t.Errorf("level %v has priority %d, not below %d for level %v",
				descending[i-1], moreUrgent, lessUrgent, descending[i])
		}
	}
}
