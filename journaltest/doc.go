// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package journaltest reads entries back out of the journal to verify
// delivered content. It is a test and tooling aid, not part of the
// forwarding path: it shells out to journalctl rather than speaking
// any protocol.
//
// Queries filter by the calling process's _PID (a trusted field the
// daemon stamps on every entry) plus a caller-chosen correlation
// field, so concurrent tests in one process can each find exactly the
// entry they sent. The journal is eventually consistent — an entry is
// not guaranteed to be queryable immediately after the datagram is
// accepted — so [Wait] polls with bounded retries instead of assuming
// synchronous visibility.
//
// journalctl's JSON output represents most field values as strings,
// but emits an array of byte numbers for values that are not valid
// UTF-8 (such as messages containing NUL bytes). [Value] accepts both
// representations, so assertions compare raw bytes regardless of how
// journalctl chose to render them.
package journaltest
