// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "log/slog"

// Priority is a journald priority value on the syslog 0-7 scale, where
// lower numbers are more urgent. Every entry carries exactly one
// PRIORITY field holding the value as a single ASCII digit.
type Priority byte

// Priority values used by this library. The mapping from slog levels is
// fixed: the daemon's filtering and coloring depend on these exact
// numbers, so they are part of the wire contract, not a tunable.
const (
	// PriorityError corresponds to syslog LOG_ERR.
	PriorityError Priority = 3

	// PriorityWarning corresponds to syslog LOG_WARNING.
	PriorityWarning Priority = 4

	// PriorityNotice corresponds to syslog LOG_NOTICE. Informational
	// records map here rather than to LOG_INFO: journald shows
	// LOG_DEBUG and LOG_INFO only with elevated verbosity, and an
	// application's Info level is its normal operating narrative.
	PriorityNotice Priority = 5

	// PriorityInfo corresponds to syslog LOG_INFO. Debug records map
	// here for the same reason Info maps to LOG_NOTICE.
	PriorityInfo Priority = 6

	// PriorityDebug corresponds to syslog LOG_DEBUG. Trace records
	// (below slog.LevelDebug) map here.
	PriorityDebug Priority = 7
)

// PriorityFromLevel maps a slog level to a journald priority. The
// mapping is total: every possible level value, including custom levels
// between or beyond the standard four, yields exactly one priority.
// Urgency ordering is preserved inversely (higher level, lower number).
func PriorityFromLevel(level slog.Level) Priority {
	switch {
	case level >= slog.LevelError:
		return PriorityError
	case level >= slog.LevelWarn:
		return PriorityWarning
	case level >= slog.LevelInfo:
		return PriorityNotice
	case level >= slog.LevelDebug:
		return PriorityInfo
	default:
		return PriorityDebug
	}
}

// digit returns the priority as its single ASCII digit wire form.
func (p Priority) digit() byte {
	return '0' + byte(p)
}
