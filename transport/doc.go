// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport delivers encoded journal entries to the journald
// daemon over its native datagram socket.
//
// A [Transport] owns one connected unixgram socket, created once at
// construction and shared by all callers. Each [Transport.Send] hands
// one complete entry to the kernel: either as a single datagram, or —
// when the kernel rejects the datagram as too large (EMSGSIZE) — as a
// sealed memfd whose descriptor is attached to an empty datagram as
// SCM_RIGHTS ancillary data. The daemon maps the descriptor and reads
// the entry from it directly, so the fallback path carries exactly the
// same bytes as the direct path.
//
// The fallback region is a scoped resource: it exists only within one
// Send call and its descriptor is closed on every exit path, success
// or failure. Nothing is retried; a failed send is reported to the
// caller and the record is dropped.
//
// Transport is safe for concurrent use. Datagram sends are atomic at
// the kernel boundary and the transport keeps no mutable state across
// calls, so records from concurrent goroutines never interleave.
package transport
