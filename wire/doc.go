// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire encodes log records into journald's native datagram
// protocol. The package is pure: it performs no I/O and makes no
// syscalls, producing a contiguous byte buffer that the transport
// package delivers to the daemon.
//
// The package is organized around the encoding pipeline:
//
//   - priority.go: severity-to-priority mapping (journald's 0-7 scale)
//   - name.go: translation of arbitrary field names into legal journald
//     field identifiers
//   - entry.go: per-field framing and whole-record assembly
//
// A journald entry is a concatenation of fields with no separator
// between them. Each field uses one of two mutually exclusive framings,
// chosen per value:
//
//	NAME=value\n                                    (textual values)
//	NAME\n<8-byte little-endian length><value>\n    (binary values)
//
// A value is binary exactly when it contains a newline or a NUL byte.
// The daemon distinguishes the framings by the byte following the
// identifier ('=' versus '\n'), so picking the wrong framing for a
// value containing a newline would corrupt every subsequent field in
// the entry. The classification is structural and exact, never
// caller-declared.
package wire
