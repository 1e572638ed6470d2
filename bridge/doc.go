// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bridge adapts log/slog records into journald entries.
//
// [Handler] implements slog.Handler: each Handle call encodes one
// record — severity, message, and attributes — with the wire package
// and sends it synchronously through a shared [transport.Transport].
// Logging is fire-and-forget with respect to the daemon: Handle
// returns once the kernel has accepted (or rejected) the datagram,
// with no retry and no buffering.
//
// The handler is the library's only configuration surface. [Options]
// selects the structured-field name prefix, the daemon socket address,
// the minimum level, source-location capture, and the syslog
// identifier tag. All defaults are resolved once in [New].
//
// Attribute values are converted by kind: strings pass through as raw
// bytes, integers, unsigned integers, floats, and booleans render as
// their textual representation, and everything else falls back to its
// debug formatting. Group names join the field name with '.' before
// translation, so group "request" and attr "id" become the journald
// field F_REQUEST_ID under the default prefix.
package bridge
